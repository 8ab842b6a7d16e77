package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/loxscript/glox/internal/filetest"
	"github.com/loxscript/glox/internal/maincmd"
)

var testUpdateRunTests = flag.Bool("test.update-run-tests", false, "If set, replace expected run test results with actual results.")

func TestRunFile(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			code := maincmd.RunFile(context.Background(), stdio, filepath.Join(srcDir, fi.Name()))
			require.Equal(t, 0, code)
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateRunTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateRunTests)
		})
	}
}

func TestRunFileMissingScriptIsUsageError(t *testing.T) {
	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

	code := maincmd.RunFile(context.Background(), stdio, filepath.Join("testdata", "in", "does-not-exist.lox"))
	require.Equal(t, 64, code)
}

func TestRunFileStaticErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.lox")
	require.NoError(t, writeFile(path, "print ;"))

	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

	code := maincmd.RunFile(context.Background(), stdio, path)
	require.Equal(t, 65, code)
	require.Contains(t, ebuf.String(), "[line 1] Error at ';': expected expression, found ;")
}

func TestRunFileRuntimeErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.lox")
	require.NoError(t, writeFile(path, `print "a" + 1;`))

	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

	code := maincmd.RunFile(context.Background(), stdio, path)
	require.Equal(t, 70, code)
	require.Contains(t, ebuf.String(), "Operands must be two numbers or two strings.")
}

func TestRunREPLPlainEchoesExpressions(t *testing.T) {
	in := strings.NewReader("var a = 1;\na + 2;\n")
	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdin: in, Stdout: &buf, Stderr: &ebuf}

	code := maincmd.RunREPL(context.Background(), stdio)
	require.Equal(t, 0, code)
	require.Contains(t, buf.String(), "3")
	require.Empty(t, ebuf.String())
}

func TestRunREPLPlainReportsErrorsWithoutEndingSession(t *testing.T) {
	in := strings.NewReader("var a = 1;\nundefined_name;\na;\n")
	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdin: in, Stdout: &buf, Stderr: &ebuf}

	code := maincmd.RunREPL(context.Background(), stdio)
	require.Equal(t, 0, code)
	require.Contains(t, ebuf.String(), "Undefined variable 'undefined_name'.")
	require.Contains(t, buf.String(), "1")
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.lox")
	require.NoError(t, writeFile(path, "var a = 1;"))

	var buf bytes.Buffer
	require.NoError(t, maincmd.ScanFile(&buf, path))
	out := buf.String()
	require.Contains(t, out, "var")
	require.Contains(t, out, "identifier a")
	require.Contains(t, out, "end of file")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.lox")
	require.NoError(t, writeFile(path, "var a = 1 + 2;"))

	var buf bytes.Buffer
	require.NoError(t, maincmd.ParseFile(&buf, path, false))
	require.Contains(t, buf.String(), "var a")
	require.Contains(t, buf.String(), "binary '+'")
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o600)
}
