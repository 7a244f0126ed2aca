package merge

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/testutil"
	"github.com/teplostanski/mergeful/pkg/types"
)

func TestResolveSource(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{
		"/data/plain.txt":  "from file",
		"/data/pkg.json":   `{"name":"mergeful","tags":["a","b"]}`,
		"/data/vals.yaml":  "name: mergeful\ncount: 2\n",
		"/data/app.toml":   "name = \"mergeful\"\n",
		"/data/bad.json":   "{",
		"/data/trail.json": `{"a":1} trailing garbage`,
		"/data/two.json":   `{"a":1}{"b":2}`,
		"/data/ws.json":    "{\"a\":1}\n\n",
		"/data/keys.yaml":  "outer:\n  1: one\n  true: yes\n",
	})

	t.Run("literal_text_is_returned_unchanged", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Text: "  <raw> \"text\"  "})
		require.NoError(t, err)
		assert.Equal(t, "  <raw> \"text\"  ", got)
	})

	t.Run("text_takes_precedence_over_path", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Text: "literal", Path: "/data/missing.txt"})
		require.NoError(t, err)
		assert.Equal(t, "literal", got)
	})

	t.Run("path_is_read", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Path: "/data/plain.txt"})
		require.NoError(t, err)
		assert.Equal(t, "from file", got)
	})

	t.Run("missing_source", func(t *testing.T) {
		_, err := ResolveSource(fsys, types.Source{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingSource))
		assert.Equal(t, `Either "text" or a valid "path" must be provided.`, err.Error())
	})

	t.Run("source_not_found", func(t *testing.T) {
		_, err := ResolveSource(fsys, types.Source{Path: "/data/missing.txt"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
		assert.Equal(t, "File does not exist: /data/missing.txt", err.Error())
		assert.Equal(t, "/data/missing.txt", errors.GetErrorDetails(err)["path"])
	})

	t.Run("stat_failure_counts_as_not_found", func(t *testing.T) {
		faulty := testutil.NewFaultFS(fsys).FailStat("/data/plain.txt", fs.ErrPermission)
		_, err := ResolveSource(faulty, types.Source{Path: "/data/plain.txt"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
		assert.ErrorIs(t, err, fs.ErrPermission)
	})

	t.Run("read_failure_after_stat", func(t *testing.T) {
		faulty := testutil.NewFaultFS(fsys).FailRead("/data/plain.txt", stderrors.New("EIO"))
		_, err := ResolveSource(faulty, types.Source{Path: "/data/plain.txt"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
		assert.Equal(t, "EIO", err.Error())
	})

	t.Run("json_is_decoded", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Path: "/data/pkg.json", Format: types.SourceFormatJSON})
		require.NoError(t, err)
		m, ok := got.(map[string]any)
		require.True(t, ok, "got %T", got)
		assert.Equal(t, "mergeful", m["name"])
	})

	t.Run("auto_picks_yaml", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Path: "/data/vals.yaml", Format: types.SourceFormatAuto})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "mergeful", "count": 2}, got)
	})

	t.Run("toml_is_decoded", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Path: "/data/app.toml", Format: types.SourceFormatTOML})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "mergeful"}, got)
	})

	t.Run("text_format_keeps_json_file_as_text", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Path: "/data/pkg.json"})
		require.NoError(t, err)
		assert.IsType(t, "", got)
	})

	t.Run("decode_failure", func(t *testing.T) {
		_, err := ResolveSource(fsys, types.Source{Path: "/data/bad.json", Format: types.SourceFormatAuto})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceDecode))
		assert.Contains(t, err.Error(), "/data/bad.json")
	})

	t.Run("json_trailing_data_is_rejected", func(t *testing.T) {
		for _, path := range []string{"/data/trail.json", "/data/two.json"} {
			_, err := ResolveSource(fsys, types.Source{Path: path, Format: types.SourceFormatJSON})
			require.Error(t, err, path)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSourceDecode), path)
			assert.Contains(t, err.Error(), "unexpected data after the first JSON value")
		}
	})

	t.Run("json_trailing_whitespace_is_allowed", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Path: "/data/ws.json", Format: types.SourceFormatJSON})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": json.Number("1")}, got)
	})

	t.Run("yaml_non_string_keys_become_strings", func(t *testing.T) {
		got, err := ResolveSource(fsys, types.Source{Path: "/data/keys.yaml", Format: types.SourceFormatYAML})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"outer": map[string]any{"1": "one", "true": "yes"}}, got)

		out, err := Transform(got, nil)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"outer\": {\n    \"1\": \"one\",\n    \"true\": \"yes\"\n  }\n}", out)
	})
}

func TestTransform(t *testing.T) {
	t.Run("default_keeps_text", func(t *testing.T) {
		got, err := Transform("a \"quoted\" <b>", nil)
		require.NoError(t, err)
		assert.Equal(t, "a \"quoted\" <b>", got)
	})

	t.Run("default_indents_structured_values", func(t *testing.T) {
		got, err := Transform(map[string]any{"b": []any{1, 2}, "a": "<x>"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": \"<x>\",\n  \"b\": [\n    1,\n    2\n  ]\n}", got)
	})

	t.Run("function_result_is_used_verbatim", func(t *testing.T) {
		got, err := Transform("abc", func(content any) (string, error) {
			return "[" + content.(string) + "]", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "[abc]", got)
	})

	t.Run("function_error", func(t *testing.T) {
		_, err := Transform("abc", func(any) (string, error) {
			return "", stderrors.New("bad input")
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransform))
		assert.Equal(t, "bad input", err.Error())
	})

	t.Run("function_panics_with_error", func(t *testing.T) {
		_, err := Transform("abc", func(any) (string, error) {
			panic(stderrors.New("exploded"))
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransform))
		assert.Equal(t, "exploded", err.Error())
	})

	t.Run("function_panics_with_non_error", func(t *testing.T) {
		_, err := Transform("abc", func(any) (string, error) {
			panic(42)
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransform))
		assert.Empty(t, err.Error())
		assert.Equal(t, "42", errors.GetErrorDetails(err)["panic"])
	})

	t.Run("unserializable_value", func(t *testing.T) {
		_, err := Transform(map[string]any{"ch": make(chan int)}, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransform))
	})
}

func TestReadTemplate(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"/init.txt": "A {{X}} B"})

	got, err := ReadTemplate(fsys, "/init.txt")
	require.NoError(t, err)
	assert.Equal(t, "A {{X}} B", got)

	_, err = ReadTemplate(fsys, "/nope.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotContains(t, err.Error(), "File does not exist")
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		label    string
		content  string
		want     string
	}{
		{"single", "A\n{{X}}\nB", "{{X}}", "hello", "A\nhello\nB"},
		{"first_only", "{{X}} and {{X}}", "{{X}}", "Y", "Y and {{X}}"},
		{"absent", "no label here", "{{X}}", "Y", "no label here"},
		{"pattern_characters_are_literal", "a.*b (x) .*", ".*", "Z", "aZb (x) .*"},
		{"replacement_is_literal", "[L]", "L", "$1 $&", "[$1 $&]"},
		{"empty_label", "abc", "", "Z", "abc"},
		{"empty_content", "a{{X}}b", "{{X}}", "", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, tt.label, tt.content))
		})
	}
}

func TestWriteOutput(t *testing.T) {
	t.Run("success_is_reported", func(t *testing.T) {
		fsys := testutil.MemoryFS(t, map[string]string{"/out/old.txt": "old content that is longer"})
		sink := NewRecordingSink()

		require.NoError(t, WriteOutput(fsys, sink, "/out/old.txt", "new"))
		assert.Equal(t, "new", testutil.MustRead(t, fsys, "/out/old.txt"))
		assert.Equal(t, []string{"File /out/old.txt generated successfully."}, sink.Successes)
		assert.Empty(t, sink.Failures)
	})

	t.Run("missing_directory_is_fatal", func(t *testing.T) {
		fsys := testutil.MemoryFS(t, nil)
		sink := NewRecordingSink()

		err := WriteOutput(fsys, sink, "/missing/out.txt", "x")
		require.Error(t, err)
		assert.True(t, errors.IsFatal(err))
		assert.Contains(t, err.Error(), "Error: Error writing to file: ")
		assert.Contains(t, err.Error(), "/missing/out.txt")
		assert.Empty(t, sink.Successes)
	})

	t.Run("reason_is_included", func(t *testing.T) {
		fsys := testutil.NewFaultFS(testutil.MemoryFS(t, nil)).FailWrite("/o.txt", stderrors.New("disk full"))

		err := WriteOutput(fsys, NewRecordingSink(), "/o.txt", "x")
		assert.Equal(t, "Error: Error writing to file: disk full", err.Error())
	})

	t.Run("reason_without_text_uses_fallback", func(t *testing.T) {
		fsys := testutil.NewFaultFS(testutil.MemoryFS(t, nil)).FailWrite("/o.txt", stderrors.New(""))

		err := WriteOutput(fsys, NewRecordingSink(), "/o.txt", "x")
		assert.Equal(t, "Error: Unknown error writing to file.", err.Error())
		assert.True(t, errors.IsFatal(err))
	})

	t.Run("panic_with_non_error_uses_fallback", func(t *testing.T) {
		fsys := testutil.NewFaultFS(testutil.MemoryFS(t, nil)).PanicOnWrite("/o.txt", struct{}{})

		err := WriteOutput(fsys, NewRecordingSink(), "/o.txt", "x")
		assert.Equal(t, "Error: Unknown error writing to file.", err.Error())
	})
}
