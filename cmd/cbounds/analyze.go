package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/cbounds/internal/cbrules"
	"github.com/sirkon/cbounds/internal/cirbuild"
	"github.com/sirkon/cbounds/internal/dataflow"
	"github.com/sirkon/cbounds/internal/engine"
	"github.com/sirkon/cbounds/internal/report"
)

var errFindings = errors.New("findings reported")

var analyzeCmd = &cobra.Command{
	Use:   "analyze [packages...]",
	Short: "Report negative indices, negative slice bounds and division by zero",
	Long: `Analyzes every function of the given packages and reports values that are
wrong on every path reaching them. Packages default to ./...

Example) cbounds analyze ./internal/...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"./..."}
		}

		ctx, cancel := conf.WithTimeout(cmd.Context())
		defer cancel()

		var rep report.Reporter
		if err := runAnalysis(ctx, args, &rep); err != nil {
			logger.Error("analysis failed", zap.Error(err))
			return err
		}

		if err := rep.PrintSummary(cmd.OutOrStdout()); err != nil {
			return err
		}
		if rep.Failed() {
			return errFindings
		}

		return nil
	},
}

func runAnalysis(ctx context.Context, patterns []string, rep *report.Reporter) error {
	noReturn, err := noReturnFuncs(conf.NoReturn)
	if err != nil {
		return err
	}

	pkgs, err := loadPackages(ctx, patterns, conf.Tests)
	if err != nil {
		return err
	}
	inputs := funcInputs(pkgs, noReturn)
	logger.Info("analyzing functions", zap.Int("packages", len(pkgs)), zap.Int("functions", len(inputs)))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency())
	for _, in := range inputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			analyzeFunc(in, rep)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("analyze functions: %w", err)
	}

	return nil
}

// analyzeFunc analyzes a single function and records its findings. Failures
// are reported too: they do not stop other functions.
func analyzeFunc(in engine.Input, rep *report.Reporter) {
	name := cirbuild.FuncName(in.Node)
	pos := in.Fset.Position(in.Node.Pos())

	fn, err := engine.Analyze(in)
	if err != nil {
		phase := report.PhaseBuild
		if errors.Is(err, dataflow.ErrRedeclared) || errors.Is(err, dataflow.ErrUnsupportedStatement) {
			phase = report.PhaseSolve
		}

		logger.Warn("function was not analyzed",
			zap.String("func", name),
			zap.String("pos", pos.String()),
			zap.Error(err),
		)
		rep.Phase(phase, name).Report(cbrules.AnalysisFailure(), err.Error(), pos)
		return
	}

	logger.Debug("function analyzed",
		zap.String("func", fn.Name),
		zap.Int("blocks", len(fn.Graph.Blocks)),
		zap.Int("visits", fn.Result.Visits()),
	)

	findings := rep.Phase(report.PhaseFindings, fn.Name)
	for _, finding := range fn.Findings() {
		if !conf.Enabled(finding.Rule) {
			continue
		}
		findings.Report(finding.Rule, finding.Message, fn.Position(finding))
	}
}

func concurrency() int {
	if conf.Concurrency > 0 {
		return conf.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}
