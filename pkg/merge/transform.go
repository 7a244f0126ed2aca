package merge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/types"
)

// Transform turns resolved content into the text that replaces the label.
// With fn set, its result is used verbatim. Without it, text is returned
// unchanged and any structured value is rendered as 2-space indented JSON.
func Transform(content any, fn types.TransformFunc) (out string, err error) {
	if fn == nil {
		out, err = Stringify(content)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrTransform, "")
		}
		return out, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = errors.Wrap(panicError(r), errors.ErrTransform, "").
				WithDetail("panic", fmt.Sprint(r))
		}
	}()

	out, err = fn(content)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTransform, "")
	}
	return out, nil
}

// Stringify is the default transformation
func Stringify(content any) (string, error) {
	switch v := content.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return marshalIndent(v)
	}
}

// marshalIndent matches JSON.stringify(v, null, 2): no HTML escaping and no
// trailing newline. Object keys come out sorted.
func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unknownError stands in for a panic value that is not an error. Its
// message is empty so the caller falls back to a fixed text.
type unknownError struct{}

func (unknownError) Error() string { return "" }

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return unknownError{}
}
