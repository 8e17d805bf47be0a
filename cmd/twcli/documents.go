package main

import (
	"fmt"

	"github.com/hoyle1974/timewindow/batch"
	"github.com/hoyle1974/timewindow/document"
	"github.com/hoyle1974/timewindow/telemetry"
	"github.com/spf13/cobra"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <key>",
		Short: "Merge the windows of one document from the configured source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}

			windows, err := document.NewLoader(store, a.cfg.Threshold).Windows(cmd.Context(), args[0])
			if err != nil {
				a.logger.Error("could not load "+args[0], err)
				return err
			}
			a.printWindows(windows)
			return nil
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <prefix>",
		Short: "Merge the windows of every document under a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}

			metrics := telemetry.NewCounters()
			evaluator := batch.NewEvaluator(store, document.NewLoader(store, a.cfg.Threshold),
				batch.WithWorkers(a.cfg.Workers),
				batch.WithLogger(a.logger),
				batch.WithMetrics(metrics),
			)

			results, err := evaluator.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(a.out, "%s: error: %v\n", r.Key, r.Err)
					continue
				}
				fmt.Fprintf(a.out, "%s:\n", r.Key)
				for _, w := range r.Windows {
					fmt.Fprintf(a.out, "  %s\n", w.Format(a.cfg.Format))
				}
			}
			a.logger.Debug(metrics.String())
			return nil
		},
	}
}
