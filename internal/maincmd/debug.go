package maincmd

import (
	"fmt"
	"io"
	"os"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/parser"
	"github.com/loxscript/glox/lang/scanner"
)

// ScanFile tokenizes the file at path and writes one line per token to w, in
// the same "pos: TOKEN literal" shape the teacher's TokenizeFiles produced.
// It is a debug helper, not part of the glox [script] CLI contract; the
// only caller is the package's own tests.
func ScanFile(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var errs scanner.ErrorList
	toks := scanner.ScanAll(path, src, &errs)
	for _, tv := range toks {
		line, col := tv.Value.Pos.LineCol()
		fmt.Fprintf(w, "%d:%d: %s", line, col, tv.Token)
		if lit := tv.Token.Literal(); lit == "" && tv.Value.Raw != "" {
			fmt.Fprintf(w, " %s", tv.Value.Raw)
		}
		fmt.Fprintln(w)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseFile parses the file at path and writes its syntax tree to w using
// ast.Printer, mirroring the teacher's ParseFiles debug helper.
func ParseFile(w io.Writer, path string, withPos bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	chunk, err := parser.ParseChunk(path, src)
	if err != nil {
		return err
	}

	printer := ast.Printer{Output: w, WithPos: withPos}
	return printer.Print(chunk)
}
