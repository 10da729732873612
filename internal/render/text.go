package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"github.com/sirkon/cbounds/internal/dataflow"
	"github.com/sirkon/cbounds/internal/ranges"
	"github.com/sirkon/cbounds/internal/sign"
)

// TextOptions controls the text dump.
type TextOptions struct {
	Color bool

	// Unreachable includes blocks of dead code.
	Unreachable bool
}

// IsTerminal tells whether w is a terminal, this is where colors make sense.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type textStyles struct {
	fn    *color.Color
	block *color.Color
	name  *color.Color
	signs map[sign.Sign]*color.Color
}

func newTextStyles(enabled bool) *textStyles {
	res := &textStyles{
		fn:    color.New(color.FgCyan, color.Bold),
		block: color.New(color.FgHiBlue, color.Bold),
		name:  color.New(color.FgWhite),
		signs: map[sign.Sign]*color.Color{
			sign.Bottom:   color.New(color.Faint),
			sign.Negative: color.New(color.FgRed, color.Bold),
			sign.Zero:     color.New(color.FgYellow),
			sign.Positive: color.New(color.FgGreen),
			sign.Top:      color.New(color.Reset),
		},
	}

	all := []*color.Color{res.fn, res.block, res.name}
	for _, c := range res.signs {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return res
}

// Text writes ranges of every variable of every block:
//
//	func f
//	block 0 (entry)
//	  x  0 -- 1   POSITIVE
//	     2 -- end TOP
func Text(w io.Writer, res *dataflow.Result, opts TextOptions) error {
	styles := newTextStyles(opts.Color)
	g := res.Graph()

	var buf strings.Builder
	buf.WriteString(styles.fn.Sprintf("func %s", g.Name))
	buf.WriteString("\n")
	for _, b := range g.Blocks {
		if b.Unreachable && !opts.Unreachable {
			continue
		}

		header := fmt.Sprintf("block %d (%s)", b.Index, b.Kind)
		if b.Unreachable {
			header += " unreachable"
		}
		buf.WriteString(styles.block.Sprint(header))
		buf.WriteString("\n")

		block := res.Block(b)
		vars := block.Variables()

		nameWidth := 0
		boundWidth := 0
		for _, v := range vars {
			nameWidth = max(nameWidth, runewidth.StringWidth(v.String()))
			for r := range block[v].All() {
				boundWidth = max(boundWidth, runewidth.StringWidth(bound(r.Start)))
			}
		}

		for _, v := range vars {
			name := runewidth.FillRight(v.String(), nameWidth)
			for r := range block[v].All() {
				start := runewidth.FillLeft(bound(r.Start), boundWidth)
				end := runewidth.FillRight(bound(r.End), len("end"))
				buf.WriteString("  ")
				buf.WriteString(styles.name.Sprint(name))
				buf.WriteString(" ")
				buf.WriteString(start)
				buf.WriteString(" -- ")
				buf.WriteString(end)
				buf.WriteString(" ")
				buf.WriteString(styles.signs[r.Value].Sprint(r.Value.String()))
				buf.WriteString("\n")

				name = strings.Repeat(" ", nameWidth)
			}
		}
	}

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return fmt.Errorf("write text dump: %w", err)
	}

	return nil
}

// bound renders a range bound, sentinels by their meaning.
func bound(idx int) string {
	switch idx {
	case ranges.BlockEntry:
		return "entry"
	case ranges.BlockEnd:
		return "end"
	default:
		return strconv.Itoa(idx)
	}
}
