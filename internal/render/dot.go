package render

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/sirkon/cbounds/internal/cir"
	"github.com/sirkon/cbounds/internal/dataflow"
	"github.com/sirkon/cbounds/internal/ranges"
)

// DotOptions controls Graphviz output.
type DotOptions struct {
	// Signs adds values every variable has on block entry and exit.
	Signs bool
}

// Dot writes the control flow graph in Graphviz dot format. Statements are
// printed from their source nodes when the graph has them and fset is
// given, otherwise from their CIR form.
func Dot(w io.Writer, fset *token.FileSet, res *dataflow.Result, opts DotOptions) error {
	g := res.Graph()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", strconv.Quote(g.Name))
	buf.WriteString("\tnode [shape=plaintext fontname=\"monospace\"];\n")

	for _, b := range g.Blocks {
		fmt.Fprintf(&buf, "\tb%d [label=<%s>", b.Index, blockTable(fset, res, b, opts))
		if b.Unreachable {
			buf.WriteString(" color=grey fontcolor=grey")
		}
		buf.WriteString("];\n")
	}

	for _, b := range g.Blocks {
		for _, succ := range b.Succs {
			if succ == nil {
				continue
			}
			fmt.Fprintf(&buf, "\tb%d -> b%d;\n", b.Index, succ.Index)
		}
	}
	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}

	return nil
}

func blockTable(fset *token.FileSet, res *dataflow.Result, b *cir.Block, opts DotOptions) string {
	var t strings.Builder
	t.WriteString(`<table border="0" cellborder="1" cellspacing="0">`)
	fmt.Fprintf(&t, `<tr><td bgcolor="lightgrey"><b>%d: %s</b></td></tr>`, b.Index, html.EscapeString(b.Kind))

	rs := res.Block(b)
	if opts.Signs {
		if row := signsRow(rs, entryValue); row != "" {
			fmt.Fprintf(&t, `<tr><td align="left"><i>in: %s</i></td></tr>`, row)
		}
	}

	for i, s := range b.Stmts {
		fmt.Fprintf(&t, `<tr><td align="left">%s</td></tr>`, statementText(fset, b, i, s))
	}

	if opts.Signs {
		if row := signsRow(rs, exitValue); row != "" {
			fmt.Fprintf(&t, `<tr><td align="left"><i>out: %s</i></td></tr>`, row)
		}
	}

	t.WriteString("</table>")
	return t.String()
}

func statementText(fset *token.FileSet, b *cir.Block, i int, s cir.Statement) string {
	text := cir.Format(s)
	if fset != nil && len(b.Nodes) == len(b.Stmts) {
		if src, ok := nodeText(fset, b.Nodes[i]); ok {
			text = src
		}
	}

	lines := strings.Split(text, "\n")
	for j, line := range lines {
		lines[j] = html.EscapeString(strings.ReplaceAll(line, "\t", "    "))
	}
	return strings.Join(lines, `<br align="left"/>`)
}

func nodeText(fset *token.FileSet, n ast.Node) (string, bool) {
	if n == nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, n); err != nil {
		return "", false
	}
	return buf.String(), true
}

func entryValue(rs dataflow.BlockRanges, v *cir.Variable) (string, bool) {
	for r := range rs[v].All() {
		if r.Start != ranges.BlockEntry {
			return "", false
		}
		return r.Value.String(), true
	}
	return "", false
}

func exitValue(rs dataflow.BlockRanges, v *cir.Variable) (string, bool) {
	last, ok := rs[v].Last()
	if !ok || last.End != ranges.BlockEnd {
		return "", false
	}
	return last.Value.String(), true
}

func signsRow(rs dataflow.BlockRanges, value func(dataflow.BlockRanges, *cir.Variable) (string, bool)) string {
	var parts []string
	for _, v := range rs.Variables() {
		if s, ok := value(rs, v); ok {
			parts = append(parts, html.EscapeString(v.String())+"="+s)
		}
	}

	return strings.Join(parts, ", ")
}
