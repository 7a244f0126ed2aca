package merge

import (
	"fmt"

	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/types"
)

// OutputPerm is the mode new output files are created with
const OutputPerm = 0o644

// WriteOutput creates or truncates path with content and reports success
// on the sink. Every failure comes back as a fatal WRITE error whose
// message carries the underlying reason.
func WriteOutput(fsys types.FS, sink Sink, path, content string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = writeError(panicError(r), path)
		}
	}()

	if werr := fsys.WriteFile(path, []byte(content), OutputPerm); werr != nil {
		return writeError(werr, path)
	}

	sink.Success(fmt.Sprintf(MsgFileGenerated, path))
	return nil
}

func writeError(err error, path string) error {
	message := MsgErrorPrefix + MsgUnknownWrite
	if reason := err.Error(); reason != "" {
		message = MsgErrorPrefix + fmt.Sprintf(MsgWriteFile, reason)
	}
	return errors.Wrap(err, errors.ErrWrite, message).WithDetail("path", path)
}
