// Package maincmd implements the glox command-line driver: argument
// parsing, REPL vs. file-mode dispatch, and the exit-code convention of
// §6 of the specification this tool implements (0 success, 64 usage error,
// 65 static error, 70 runtime error).
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "glox"

var shortUsage = fmt.Sprintf("Usage: %s [script]\n", binName)

// Cmd holds the parsed command-line flags and positional arguments for a
// single invocation of glox.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)         { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

// Main parses args, dispatches to the REPL or to file execution, and
// returns the process exit code.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(exitUsage)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, shortUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if len(c.args) > 1 {
		fmt.Fprint(stdio.Stderr, shortUsage)
		return mainer.ExitCode(exitUsage)
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	if len(c.args) == 1 {
		return mainer.ExitCode(RunFile(ctx, stdio, c.args[0]))
	}
	return mainer.ExitCode(RunREPL(ctx, stdio))
}

// Exit codes, per the sysexits.h convention the specification requires.
const (
	exitSuccess = 0
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)
