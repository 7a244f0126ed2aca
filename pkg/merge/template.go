package merge

import (
	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/types"
)

// ReadTemplate reads the whole template file. There is no existence check:
// a missing template is reported with the filesystem's own error text.
func ReadTemplate(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateRead, "").WithDetail("path", path)
	}
	return string(data), nil
}
