package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls pretty-printing of AST nodes, used by tests and debug
// tooling to assert tree shape without hand-writing deep struct literals.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// WithPos, if true, prefixes each node with its [line] position.
	WithPos bool

	// NodeFmt is the format string used to print each node. The verb must be
	// either `s` or `v`. Defaults to `%v`.
	NodeFmt string
}

// Print pretty-prints the AST node n, indenting children under their
// parent.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, withPos: p.WithPos, nodeFmt: p.NodeFmt}
	if pp.nodeFmt == "" {
		pp.nodeFmt = "%v"
	}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w       io.Writer
	withPos bool
	nodeFmt string
	depth   int
	err     error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}

	format := "%s"
	args := []any{strings.Repeat(". ", indent)}
	if p.withPos {
		start, _ := n.Span()
		format += "[%d] "
		args = append(args, start.Line())
	}
	format += p.nodeFmt + "\n"
	args = append(args, n)

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
