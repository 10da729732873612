package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/cbounds/internal/cirbuild"
	"github.com/sirkon/cbounds/internal/config"
	"github.com/sirkon/cbounds/internal/engine"
	"github.com/sirkon/cbounds/internal/render"
)

// variables for flags
var (
	funcName    string
	output      string
	format      = config.OutputFormatText
	colorMode   = config.ColorModeAuto
	signs       bool
	unreachable bool
)

var cfgCmd = &cobra.Command{
	Use:   "cfg [packages...]",
	Short: "Dump computed signs or the control flow graph of a function",
	Long: `Outputs ranges of signs of every integer variable of the function or its control
flow graph in GraphViz format. Methods are named like (*T).Name.

Example) cbounds cfg --func MyFunction --format dot ./pkg | dot -Tsvg > f.svg`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if funcName == "" {
			return fmt.Errorf("--func is required")
		}
		applyOutputFlags(cmd)

		ctx, cancel := conf.WithTimeout(cmd.Context())
		defer cancel()

		w := cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				logger.Error("failed to create output file", zap.String("path", output), zap.Error(err))
				return err
			}
			defer func() {
				if err := f.Close(); err != nil {
					logger.Error("failed to close output file", zap.String("path", output), zap.Error(err))
				}
			}()
			w = f
		}

		if err := runCFGDump(ctx, w, args); err != nil {
			logger.Error("cfg dump failed", zap.String("func", funcName), zap.Error(err))
			return err
		}

		return nil
	},
}

func init() {
	cfgCmd.Flags().StringVar(&funcName, "func", "", "function name, (T).Name or (*T).Name for methods")
	cfgCmd.Flags().StringVarP(&output, "output", "o", "", "output path, stdout by default")
	cfgCmd.Flags().Var(&format, "format", "output format: text, json or dot")
	cfgCmd.Flags().Var(&colorMode, "color", "colored text output: auto, always or never")
	cfgCmd.Flags().BoolVar(&signs, "signs", true, "annotate dot output with signs")
	cfgCmd.Flags().BoolVar(&unreachable, "unreachable", false, "include dead blocks in text output")
}

// applyOutputFlags puts explicitly set flags over the configuration.
func applyOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		conf.Output.Format = format
	}
	if flags.Changed("color") {
		conf.Output.Color = colorMode
	}
	if flags.Changed("signs") {
		conf.Output.Signs = signs
	}
	if flags.Changed("unreachable") {
		conf.Output.Unreachable = unreachable
	}
}

func runCFGDump(ctx context.Context, w io.Writer, patterns []string) error {
	noReturn, err := noReturnFuncs(conf.NoReturn)
	if err != nil {
		return err
	}

	pkgs, err := loadPackages(ctx, patterns, conf.Tests)
	if err != nil {
		return err
	}

	found := false
	for _, in := range funcInputs(pkgs, noReturn) {
		if cirbuild.FuncName(in.Node) != funcName {
			continue
		}
		found = true

		fn, err := engine.Analyze(in)
		if err != nil {
			return fmt.Errorf("analyze %s at %s: %w", funcName, in.Fset.Position(in.Node.Pos()), err)
		}
		if err := dump(w, in, fn); err != nil {
			return err
		}
	}

	if !found {
		return fmt.Errorf("function not found: %s", funcName)
	}

	return nil
}

func dump(w io.Writer, in engine.Input, fn *engine.Func) error {
	switch conf.Output.Format {
	case config.OutputFormatJSON:
		return render.JSON(w, fn.Result)
	case config.OutputFormatDot:
		return render.Dot(w, in.Fset, fn.Result, render.DotOptions{Signs: conf.Output.Signs})
	default:
		return render.Text(w, fn.Result, render.TextOptions{
			Color:       conf.Output.Color.Enabled(render.IsTerminal(w)),
			Unreachable: conf.Output.Unreachable,
		})
	}
}
