package report

import (
	"bytes"
	"go/token"
	"sync"
	"testing"

	"github.com/sirkon/cbounds/internal/cbrules"
)

func TestReporter_ReportPhases(t *testing.T) {
	tests := []struct {
		name     string
		phase    Phase
		fn       string
		rule     cbrules.Rule
		message  string
		filename string
		line     int
	}{
		{
			name:     "build failure",
			phase:    PhaseBuild,
			fn:       "f",
			rule:     cbrules.AnalysisFailure(),
			message:  "unsupported function node",
			filename: "main.go",
			line:     10,
		},
		{
			name:     "solve failure",
			phase:    PhaseSolve,
			fn:       "g",
			rule:     cbrules.AnalysisFailure(),
			message:  "variable redeclared",
			filename: "solve.go",
			line:     20,
		},
		{
			name:     "negative index",
			phase:    PhaseFindings,
			fn:       "(*T).M",
			rule:     cbrules.NegativeIndex(),
			message:  "index is always negative",
			filename: "file.go",
			line:     42,
		},
	}

	var r Reporter

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase := r.Phase(tt.phase, tt.fn)
			phase.Report(tt.rule, tt.message, token.Position{
				Filename: tt.filename,
				Line:     tt.line,
			})
		})
	}

	reps := r.Reports()
	if len(reps) != len(tests) {
		t.Fatalf("expected %d reports, got %d", len(tests), len(reps))
	}

	for i, rep := range reps {
		want := tests[i]
		if rep.Phase != want.phase {
			t.Errorf("[%s] phase mismatch: got %v, want %v", want.name, rep.Phase, want.phase)
		}
		if rep.RuleCode != want.rule {
			t.Errorf("[%s] rule mismatch: got %v, want %v", want.name, rep.RuleCode, want.rule)
		}
		if rep.Func != want.fn {
			t.Errorf("[%s] function mismatch: got %q, want %q", want.name, rep.Func, want.fn)
		}
		if rep.Message != want.message {
			t.Errorf("[%s] message mismatch: got %q, want %q", want.name, rep.Message, want.message)
		}
		if rep.Pos.Filename != want.filename || rep.Pos.Line != want.line {
			t.Errorf("[%s] position mismatch: got %s:%d, want %s:%d",
				want.name, rep.Pos.Filename, rep.Pos.Line, want.filename, want.line)
		}
	}

	if !r.Failed() {
		t.Errorf("reporter with reports must be failed")
	}
}

func TestReporter_Summary(t *testing.T) {
	var r Reporter
	r.Phase(PhaseFindings, "b").Report(cbrules.DivisionByZero(), "integer division by zero", token.Position{
		Filename: "b.go",
		Line:     3,
		Column:   9,
	})
	r.Phase(PhaseFindings, "a").Report(cbrules.NegativeIndex(), "index is always negative", token.Position{
		Filename: "a.go",
		Line:     7,
		Column:   2,
	})

	var buf bytes.Buffer
	if err := r.PrintSummary(&buf); err != nil {
		t.Fatalf("print summary: %v", err)
	}

	want := "a.go:7:2: [findings] CB001: NegativeIndex: index is always negative (a)\n" +
		"b.go:3:9: [findings] CB010: DivisionByZero: integer division by zero (b)\n"
	if got := buf.String(); got != want {
		t.Errorf("summary mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r    Reporter
		wg   sync.WaitGroup
		fset token.FileSet
	)
	if r.Failed() {
		t.Fatalf("empty reporter must not be failed")
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(Report{
				Phase:    PhaseFindings,
				RuleCode: cbrules.NegativeIndex(),
				Message:  "parallel add",
				Pos:      fset.Position(token.Pos(i)),
			})
		}(i)
	}
	wg.Wait()

	reps := r.Reports()
	if len(reps) != n {
		t.Fatalf("expected %d reports, got %d", n, len(reps))
	}
	reps[0].Message = "changed"
	reps2 := r.Reports()
	if reps2[0].Message == "changed" {
		t.Fatalf("Reports() returned shared slice, expected copy")
	}
}
