package maincmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"go/scanner"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mna/mainer"

	"github.com/loxscript/glox/lang/interp"
	"github.com/loxscript/glox/lang/parser"
	"github.com/loxscript/glox/lang/resolver"
)

// RunFile parses, resolves and interprets the program at path, writing
// "print" output to stdio.Stdout and any errors to stdio.Stderr. It returns
// the process exit code: 0 on success, 64 if the file cannot be read, 65 on
// a static (parse or resolve) error, 70 on a runtime error.
func RunFile(ctx context.Context, stdio mainer.Stdio, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return exitUsage
	}

	in := interp.New(stdio.Stdout, false)
	return run(in, path, src, stdio.Stderr)
}

// RunREPL runs an interactive read-eval-print loop over stdio, with line
// editing and history via readline and errors highlighted in red. A single
// Interpreter instance is shared across every line, so definitions
// accumulate the way the specification requires; a runtime or static error
// on one line is reported but does not end the session.
func RunREPL(ctx context.Context, stdio mainer.Stdio) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		Stdin:  io.NopCloser(stdio.Stdin),
		Stdout: stdio.Stdout,
		Stderr: stdio.Stderr,
	})
	if err != nil {
		// readline needs a real terminal; fall back to a plain line reader so
		// piped-in REPL input (as in tests) still works.
		return runREPLPlain(stdio)
	}
	defer rl.Close()

	in := interp.New(stdio.Stdout, true)
	errOut := &colorWriter{w: stdio.Stderr, c: color.New(color.FgRed)}

	for {
		select {
		case <-ctx.Done():
			return exitSuccess
		default:
		}

		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF), err != nil:
			return exitSuccess
		}

		run(in, "<stdin>", []byte(line), errOut)
	}
}

// runREPLPlain is the REPL loop used when readline can't attach to a
// terminal (notably: tests driving the REPL through an in-memory pipe).
func runREPLPlain(stdio mainer.Stdio) int {
	in := interp.New(stdio.Stdout, true)
	errOut := &colorWriter{w: stdio.Stderr, c: color.New(color.FgRed)}

	sc := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !sc.Scan() {
			return exitSuccess
		}
		run(in, "<stdin>", sc.Bytes(), errOut)
	}
}

// colorWriter applies c to everything written through it; used to render
// REPL errors in red while "print" output stays the terminal's default
// color.
type colorWriter struct {
	w io.Writer
	c *color.Color
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	if _, err := cw.c.Fprint(cw.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// run executes one chunk of source against in, writing any error to
// stderr and returning the resulting exit code.
func run(in *interp.Interpreter, filename string, src []byte, stderr io.Writer) int {
	chunk, err := parser.ParseChunk(filename, src)
	if err != nil {
		printStaticErrors(stderr, err)
		return exitStatic
	}

	if err := resolver.Resolve(filename, chunk, in.Resolve); err != nil {
		printStaticErrors(stderr, err)
		return exitStatic
	}

	if err := in.Interpret(chunk); err != nil {
		fmt.Fprintln(stderr, err)
		return exitRuntime
	}

	return exitSuccess
}

// printStaticErrors renders each collected parse/resolve error in the
// "[line N] Error<where>: <msg>" form the specification requires, where
// <where> is " at end", " at '<lexeme>'", or empty for a bare scanner
// error with no token context. The scanner, parser, and resolver each bake
// their own <where> clause (if any) directly into e.Msg, since go/scanner's
// Error is only the bookkeeping container (position + message), not the
// presentation, and has no field to carry one separately.
func printStaticErrors(w io.Writer, err error) {
	var errs scanner.ErrorList
	if !errors.As(err, &errs) {
		fmt.Fprintln(w, err)
		return
	}
	for _, e := range errs {
		fmt.Fprintf(w, "[line %d] Error%s\n", e.Pos.Line, e.Msg)
	}
}
