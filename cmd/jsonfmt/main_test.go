package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1ced/jsonval"
)

func TestRunPretty(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`{"b": [1, 2], "a": {}}`), stdout, stderr)
	require.NoError(t, err)

	want := `{
  "b" : [
    1,
    2
  ],
  "a" : {}
}
`
	assert.Equal(t, want, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunCompact(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Compact = true

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`{"b": [1, 2], "a": {}}`), stdout, stderr)
	require.NoError(t, err)

	assert.Equal(t, `{"b":[1,2],"a":{}}`+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunIndent(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Indent = "\t"

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`[{"a": 1}]`), stdout, stderr)
	require.NoError(t, err)

	assert.Equal(t, "[\n\t{\n\t\t\"a\" : 1\n\t}\n]\n", stdout.String())
}

func TestRunDuplicateKeyWarning(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`{"a": 1, "a": 2}`), stdout, stderr)
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"a\" : 2\n}\n", stdout.String())
	assert.Contains(t, stderr.String(), "level=warn")
	assert.Contains(t, stderr.String(), "object key is not unique")
	assert.Contains(t, stderr.String(), "key=a")
}

func TestRunQuiet(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Quiet = true

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`{"a": 1, "a": 2}`), stdout, stderr)
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"a\" : 2\n}\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunParseError(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`{"a":}`), stdout, stderr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonval.ErrUnexpectedCharacter))
	assert.Empty(t, stdout.String())
}

func TestRunValidate(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Validate = true

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`{"ok": [true, null]}`), stdout, stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	err = run(strings.NewReader(`[1, 2`), stdout, stderr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonval.ErrUnexpectedEOF))
	assert.Empty(t, stdout.String())
}

func TestRunScalar(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(`42`), stdout, stderr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonval.ErrUnexpectedCharacter))

	CLI.Scalar = true
	stdout.Reset()
	err = run(strings.NewReader(`42`), stdout, stderr)
	require.NoError(t, err)
	assert.Equal(t, "42\n", stdout.String())
}

func TestRunFileInputOutput(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(input, []byte(`[1, 2, 3]`), 0o644))

	CLI.Input = input
	CLI.Output = output
	CLI.Compact = true

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(""), stdout, stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", string(data))
}

func TestRunMissingInput(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = filepath.Join(t.TempDir(), "missing.json")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(""), stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
	assert.Contains(t, err.Error(), "missing.json")
}
