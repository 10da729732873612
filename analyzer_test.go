package cbounds

import (
	"embed"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sirkon/cbounds/internal/cirbuild"
	"github.com/sirkon/cbounds/internal/engine"
)

//go:embed testdata/cases
var testCases embed.FS

func TestAnalyzer(t *testing.T) {
	results := analysistest.Run(t, analysistest.TestData(), Analyzer, "bounds")
	if len(results) != 1 {
		t.Fatalf("one result was expected, got %d", len(results))
	}

	res, ok := results[0].Result.(*Result)
	if !ok {
		t.Fatalf("unexpected result type %T", results[0].Result)
	}
	for node, err := range res.Failures {
		t.Errorf("%T at %d: %v", node, node.Pos(), err)
	}
	// 14 declarations and two literals.
	if len(res.Funcs) != 16 {
		t.Errorf("16 analyzed functions were expected, got %d", len(res.Funcs))
	}
}

func TestRuleList(t *testing.T) {
	var l ruleList
	if err := l.Set("CB010, NegativeSliceBound,"); err != nil {
		t.Fatalf("set rules: %v", err)
	}
	if got := l.String(); got != "CB010,CB002" {
		t.Errorf("unexpected rules %q", got)
	}
	if err := l.Set("CB100"); err == nil {
		t.Errorf("error was expected for an unknown rule")
	}
}

var findingMark = regexp.MustCompile(`// finding: (CB\d+)`)

func TestCases(t *testing.T) {
	files, err := testCases.ReadDir("testdata/cases")
	if err != nil {
		t.Fatal(fmt.Errorf("list case files: %w", err))
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		if !strings.HasPrefix(file.Name(), "case_") {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			data, err := testCases.ReadFile("testdata/cases/" + file.Name())
			if err != nil {
				t.Fatalf("read file %s: %s", file.Name(), err)
			}

			expected := map[string][]string{}
			for i, line := range strings.Split(string(data), "\n") {
				if m := findingMark.FindStringSubmatch(line); m != nil {
					key := strconv.Itoa(i + 1)
					expected[key] = append(expected[key], m[1])
				}
			}

			src, err := cirbuild.BuildSource(file.Name(), data)
			if err != nil {
				t.Fatalf("build source: %v", err)
			}

			got := map[string][]string{}
			for _, fn := range src.Funcs {
				f, err := engine.Analyze(engine.Input{
					Fset: src.Fset,
					Node: fn.Node,
					CFG:  fn.CFG,
					Info: src.Info,
				})
				if err != nil {
					t.Fatalf("analyze %s: %v", fn.Graph.Name, err)
				}

				for _, finding := range f.Findings() {
					key := strconv.Itoa(f.Position(finding).Line)
					got[key] = append(got[key], finding.Rule.Code())
				}
			}

			if !reflect.DeepEqual(expected, got) {
				deepequal.SideBySide(t, "findings", expected, got)
			}
		})
	}
}
