package merge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/teplostanski/mergeful/pkg/types"
	"gopkg.in/yaml.v3"
)

// builtinTransforms are the named transformations selectable from the CLI
// and job files
var builtinTransforms = map[string]types.TransformFunc{
	"trim":  trimTransform,
	"quote": quoteTransform,
	"json":  jsonTransform,
	"yaml":  yamlTransform,
	"toml":  tomlTransform,
}

// LookupTransform returns the named transformation. "" and "none" select
// the default behaviour and return a nil func.
func LookupTransform(name string) (types.TransformFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return nil, nil
	}
	fn, ok := builtinTransforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform %q (available: %s)", name, strings.Join(TransformNames(), ", "))
	}
	return fn, nil
}

// TransformNames lists the selectable transformation names
func TransformNames() []string {
	names := []string{"none"}
	for name := range builtinTransforms {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

func trimTransform(content any) (string, error) {
	s, err := Stringify(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func quoteTransform(content any) (string, error) {
	s, err := Stringify(content)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func jsonTransform(content any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(content); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func yamlTransform(content any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(plainNumbers(content)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func tomlTransform(content any) (string, error) {
	if _, ok := content.(map[string]any); !ok {
		return "", fmt.Errorf("toml transform needs a table, got %T", content)
	}
	b, err := toml.Marshal(plainNumbers(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// plainNumbers replaces the json.Number values left by JSON source decoding
// with int64 or float64, so encoders other than encoding/json emit numbers
// instead of strings.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainNumbers(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainNumbers(e)
		}
		return out
	default:
		return v
	}
}

// stringKeys converts the map[any]any values yaml.v3 produces for mappings
// with non-string keys into map[string]any, so every decoded source can be
// rendered as JSON.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = stringKeys(e)
		}
		return out
	case map[string]any:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
		return t
	default:
		return v
	}
}
