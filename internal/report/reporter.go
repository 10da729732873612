// Package report collects findings and analysis failures of many functions,
// possibly analyzed concurrently.
package report

import (
	"cmp"
	"fmt"
	"go/token"
	"io"
	"slices"
	"sync"

	"github.com/sirkon/cbounds/internal/cbrules"
)

// Reporter collects diagnostics. The zero value is ready to use.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    Phase
	RuleCode cbrules.Rule
	Func     string
	Pos      token.Position
	Message  string
}

// Phase marks the analysis stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseBuild         // CIR construction
	PhaseSolve         // fixpoint computation
	PhaseFindings      // findings of a solved function
)

func (p Phase) String() string {
	switch p {
	case PhaseBuild:
		return "build"
	case PhaseSolve:
		return "solve"
	case PhaseFindings:
		return "findings"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseReporter binds a Reporter to a fixed phase and function.
type PhaseReporter struct {
	parent *Reporter
	phase  Phase
	fn     string
}

// Phase returns a reporter that sets the given phase and function name for
// all reports produced through it.
func (r *Reporter) Phase(p Phase, fn string) *PhaseReporter {
	return &PhaseReporter{parent: r, phase: p, fn: fn}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new rule violation under the bound phase.
func (rp *PhaseReporter) Report(rule cbrules.Rule, message string, pos token.Position) {
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Func:     rp.fn,
		Message:  message,
		Pos:      pos,
	})
}

// Reports returns a snapshot of all collected records in the order they
// were added.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Sorted returns a snapshot ordered by position, which is stable across
// concurrent runs.
func (r *Reporter) Sorted() []Report {
	out := r.Reports()
	slices.SortStableFunc(out, func(a, b Report) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
			cmp.Compare(a.RuleCode, b.RuleCode),
			cmp.Compare(a.Func, b.Func),
		)
	})
	return out
}

// Failed tells whether anything was reported.
func (r *Reporter) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports) > 0
}

// PrintSummary prints all collected reports in a compact form.
func (r *Reporter) PrintSummary(w io.Writer) error {
	for _, rep := range r.Sorted() {
		if _, err := fmt.Fprintf(w, "%s: [%s] %s: %s (%s)\n",
			rep.Pos,
			rep.Phase,
			rep.RuleCode,
			rep.Message,
			rep.Func,
		); err != nil {
			return fmt.Errorf("print report: %w", err)
		}
	}

	return nil
}
