package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/paleostress/config"
	"github.com/katalvlaran/paleostress/report"
	"github.com/katalvlaran/paleostress/search"
)

type runOptions struct {
	*rootOptions
	configPath string
	out        string
	plot       string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the inversion described by a run file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "run file (YAML)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "report path, overrides output.report (default stdout)")
	cmd.Flags().StringVar(&opts.plot, "plot", "", "residual histogram path, overrides output.plot")
	// flag paths are relative to the working directory, run file paths to the run file
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func (o *runOptions) run(stdout io.Writer) error {
	runID := uuid.NewString()
	log := o.logger.With("run_id", runID)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	inv, err := cfg.Inversion()
	if err != nil {
		return err
	}
	active := len(inv.Data().Active())
	log.Info("dataset loaded", "data", len(inv.Data()), "active", active, "faults", len(inv.Data().Faults()))

	strategy := inv.Strategy()
	strategy.SetProgress(func(p search.Progress) {
		log.Info("search progress", "method", p.Method.String(), "done", p.Done, "total", p.Total,
			"percent", fmt.Sprintf("%.0f", 100*p.Fraction()))
	})

	start := time.Now()
	sol, err := inv.Run()
	if err != nil {
		return err
	}
	log.Info("search finished", "method", strategy.Method().String(), "misfit", sol.MisfitValue,
		"stress_ratio", sol.StressRatio, "elapsed", time.Since(start))

	rep := report.Build(sol, inv.Predict(sol), runID)
	rep.Method = strategy.Method().String()
	log.Debug("residuals", "mean", rep.Residuals.Mean, "p90", rep.Residuals.P90, "fit", rep.Fit)

	outPath := firstNonEmpty(o.out, cfg.ResolvePath(cfg.Output.Report))
	if err := writeReport(rep, outPath, stdout); err != nil {
		return err
	}
	if outPath != "" {
		log.Info("report written", "path", outPath)
	}

	if plotPath := firstNonEmpty(o.plot, cfg.ResolvePath(cfg.Output.Plot)); plotPath != "" {
		if err := report.WritePlot(rep, plotPath); err != nil {
			return err
		}
		log.Info("plot written", "path", plotPath)
	}
	return nil
}

func writeReport(rep report.Report, path string, stdout io.Writer) error {
	if path == "" {
		return rep.Write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rep.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
