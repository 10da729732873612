package ranges

import (
	"slices"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/cbounds/internal/sign"
)

func TestRangesLookup(t *testing.T) {
	r := New()

	if _, ok := r.Lookup(0); ok {
		t.Fatal("nothing was expected at index 0 right now")
	}

	r.Insert(BlockEntry, 0, sign.Top)
	r.Insert(1, 1, sign.Zero)
	r.Insert(2, 5, sign.Positive)
	r.Insert(7, BlockEnd, sign.Negative)

	type test struct {
		name  string
		index int
		want  sign.Sign
		isnil bool
	}
	testingFunc := func(tt test) func(t *testing.T) {
		return func(t *testing.T) {
			got, ok := r.Lookup(tt.index)
			if !ok && !tt.isnil {
				t.Fatalf("range was not found at index %d", tt.index)
			}
			if ok && tt.isnil {
				t.Fatalf("no range was expected at index %d, got %s", tt.index, got)
			}
			if ok && got != tt.want {
				t.Fatalf("%s was expected at index %d, got %s", tt.want, tt.index, got)
			}
		}
	}

	tests := []test{
		{name: "entry sentinel", index: BlockEntry, want: sign.Top},
		{name: "inherited", index: -100, want: sign.Top},
		{name: "first statement", index: 0, want: sign.Top},
		{name: "single", index: 1, want: sign.Zero},
		{name: "span start", index: 2, want: sign.Positive},
		{name: "span end", index: 5, want: sign.Positive},
		{name: "gap", index: 6, isnil: true},
		{name: "tail", index: 7, want: sign.Negative},
		{name: "end sentinel", index: BlockEnd, want: sign.Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, testingFunc(tt))
	}

	last, ok := r.Last()
	if !ok {
		t.Fatal("last range was expected")
	}
	deepequal.SideBySide(t, "last", Range{Start: 7, End: BlockEnd, Value: sign.Negative}, last)
	if r.Len() != 4 {
		t.Errorf("4 ranges were expected, got %d", r.Len())
	}
}

func TestRangesOrder(t *testing.T) {
	r := New()
	r.Insert(0, 2, sign.Zero)
	r.Insert(3, 3, sign.Positive)
	r.Insert(4, BlockEnd, sign.Top)

	expected := []Range{
		{Start: 0, End: 2, Value: sign.Zero},
		{Start: 3, End: 3, Value: sign.Positive},
		{Start: 4, End: BlockEnd, Value: sign.Top},
	}
	deepequal.SideBySide(t, "ranges", expected, slices.Collect(r.All()))

	var count int
	for range r.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iteration was expected to stop after the first range, got %d", count)
	}
}

func TestRangesInsertPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *Ranges)
	}{
		{
			name: "inverted",
			setup: func(r *Ranges) {
				r.Insert(3, 2, sign.Zero)
			},
		},
		{
			name: "overlap",
			setup: func(r *Ranges) {
				r.Insert(0, 5, sign.Zero)
				r.Insert(5, 6, sign.Zero)
			},
		},
		{
			name: "before last",
			setup: func(r *Ranges) {
				r.Insert(10, 12, sign.Zero)
				r.Insert(0, 1, sign.Zero)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("panic was expected")
				}
			}()

			tt.setup(New())
		})
	}
}
