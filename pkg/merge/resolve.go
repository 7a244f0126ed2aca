package merge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/types"
	"gopkg.in/yaml.v3"
)

// ResolveSource returns the content to insert. Literal text wins and is
// returned untouched. A path is checked for existence before it is read,
// then decoded according to src.Format.
func ResolveSource(fsys types.FS, src types.Source) (any, error) {
	if src.Text != "" {
		return src.Text, nil
	}
	if src.Path == "" {
		return nil, errors.New(errors.ErrMissingSource, MsgTextOrPathRequired)
	}

	if _, err := fsys.Stat(src.Path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceNotFound, MsgFileDoesNotExist, src.Path).
			WithDetail("path", src.Path)
	}

	data, err := fsys.ReadFile(src.Path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceRead, "").WithDetail("path", src.Path)
	}

	format := src.Format.ForPath(src.Path)
	content, err := decodeSource(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceDecode, "Cannot decode %s as %s: %v", src.Path, format, err).
			WithDetail("path", src.Path).
			WithDetail("format", string(format))
	}
	return content, nil
}

func decodeSource(data []byte, format types.SourceFormat) (any, error) {
	switch format {
	case types.SourceFormatJSON:
		var v any
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return nil, fmt.Errorf("unexpected data after the first JSON value at offset %d", dec.InputOffset())
		}
		return v, nil
	case types.SourceFormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return stringKeys(v), nil
	case types.SourceFormatTOML:
		var v map[string]any
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return string(data), nil
	}
}
