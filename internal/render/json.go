package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/sirkon/cbounds/internal/dataflow"
	"github.com/sirkon/cbounds/internal/ranges"
	"github.com/sirkon/cbounds/internal/sign"
)

// Document is the JSON form of a function analysis result.
type Document struct {
	Func         string        `json:"func"`
	Visits       int           `json:"visits"`
	Blocks       []Block       `json:"blocks"`
	Observations []Observation `json:"observations,omitempty"`
}

// Block is the JSON form of one block.
type Block struct {
	Index       int        `json:"index"`
	Kind        string     `json:"kind"`
	Unreachable bool       `json:"unreachable,omitempty"`
	Succs       []int      `json:"succs,omitempty"`
	Vars        []Variable `json:"vars,omitempty"`
}

// Variable lists ranges of a variable within a block.
type Variable struct {
	Name   string  `json:"name"`
	Ranges []Range `json:"ranges"`
}

// Range is the JSON form of ranges.Range.
type Range struct {
	Start Bound     `json:"start"`
	End   Bound     `json:"end"`
	Value sign.Sign `json:"value"`
}

// Observation is the JSON form of dataflow.Observation.
type Observation struct {
	Kind  string    `json:"kind"`
	Block int       `json:"block"`
	Stmt  int       `json:"stmt"`
	Value sign.Sign `json:"value"`
}

// Bound is a statement index. Sentinels are written as "entry" and "end".
type Bound int

// MarshalJSON implements json.Marshaler.
func (b Bound) MarshalJSON() ([]byte, error) {
	switch b {
	case ranges.BlockEntry, ranges.BlockEnd:
		return []byte(strconv.Quote(bound(int(b)))), nil
	default:
		return []byte(strconv.Itoa(int(b))), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bound) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"entry"`:
		*b = ranges.BlockEntry
		return nil
	case `"end"`:
		*b = ranges.BlockEnd
		return nil
	}

	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid bound %s: %w", data, err)
	}

	*b = Bound(v)
	return nil
}

// NewDocument converts a result into its JSON form.
func NewDocument(res *dataflow.Result) *Document {
	g := res.Graph()
	doc := &Document{
		Func:   g.Name,
		Visits: res.Visits(),
		Blocks: make([]Block, 0, len(g.Blocks)),
	}

	for _, b := range g.Blocks {
		block := Block{
			Index:       b.Index,
			Kind:        b.Kind,
			Unreachable: b.Unreachable,
		}
		for _, succ := range b.Succs {
			if succ != nil {
				block.Succs = append(block.Succs, succ.Index)
			}
		}

		rs := res.Block(b)
		for _, v := range rs.Variables() {
			variable := Variable{
				Name:   v.String(),
				Ranges: make([]Range, 0, rs[v].Len()),
			}
			for r := range rs[v].All() {
				variable.Ranges = append(variable.Ranges, Range{
					Start: Bound(r.Start),
					End:   Bound(r.End),
					Value: r.Value,
				})
			}
			block.Vars = append(block.Vars, variable)
		}

		doc.Blocks = append(doc.Blocks, block)
	}

	for _, obs := range res.Observations() {
		doc.Observations = append(doc.Observations, Observation{
			Kind:  obs.Kind.String(),
			Block: obs.Block,
			Stmt:  obs.Stmt,
			Value: obs.Value,
		})
	}

	return doc
}

// JSON writes the indented JSON form of the result.
func JSON(w io.Writer, res *dataflow.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("encode json dump: %w", err)
	}

	return nil
}
