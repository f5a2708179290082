package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsageAdvertisesReplMode(t *testing.T) {
	// run() with zero args starts the REPL, which blocks on readline; that
	// path is not exercised here. We only check the usage text advertises
	// it.
	var out bytes.Buffer
	printUsage(&out)
	require.Contains(t, out.String(), "REPL")
}

func TestRunUsageContainsRequiredPhrases(t *testing.T) {
	var out bytes.Buffer
	printUsage(&out)
	text := out.String()
	require.Contains(t, text, "file extension")
	require.Contains(t, text, "Example 1")
}

func TestRunVersionContainsBothVersionLines(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out)
	text := out.String()
	require.Contains(t, text, "specification version")
	require.Contains(t, text, "interpreter version")
}

func TestRunEvaluatesLiteralExpressionSource(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"return(1 + 2)"}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "3")
}

func TestRunConcatenatesAdjacentSourcesWithPlus(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"return(1+", "+", "2)"}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "3")
}

func TestRunJSONFlagParsesSubsequentArgumentAsJSONOnly(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-j", `{"a": 1}`}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
}

func TestRunLoadsJSONFileByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"x": 5}`), 0o644))

	var out bytes.Buffer
	code := run([]string{path, "return(x)"}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "5")
}

func TestRunLoadsVivFileByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.viv")
	require.NoError(t, os.WriteFile(path, []byte(`return(10 * 2)`), 0o644))

	var out bytes.Buffer
	code := run([]string{path}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "20")
}

func TestRunStdinBindsToName(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-i=payload", "return(payload)"}, strings.NewReader("hello"), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "hello")
}

func TestRunUnrecognizedFlagPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--bogus"}, strings.NewReader(""), &out)
	require.NotEqual(t, 0, code)
	require.Contains(t, out.String(), "file extension")
}

func TestRunParseErrorReportsErrorPrefixOnStdout(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"return(1 +"}, strings.NewReader(""), &out)
	require.NotEqual(t, 0, code)
	require.Contains(t, out.String(), "Error:")
}
