package main

import (
	"context"
	"log/slog"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/intervals"
	wsevents "github.com/aretw0/intervals/pkg/adapters/lifecycle"
	"github.com/aretw0/intervals/pkg/worksheet"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Regrade worksheets whenever they change",
	Long: `Grade every worksheet under dir, then watch it and regrade each file that is created or modified.
Stops on the first interrupt; a second one exits immediately.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		sigCtx := lifecycle.NewSignalContext(cmd.Context(), lifecycle.WithForceExit(2))
		defer sigCtx.Stop()
		var ctx context.Context = sigCtx

		svc := newService()
		logger := svc.Logger()

		paths, err := svc.Discover(root)
		if err != nil {
			fatal("Error finding worksheets", err)
		}
		gradeAndPrint(ctx, cmd, svc, paths)

		watcher := svc.NewWatcher(root)
		events, err := watcher.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		source := wsevents.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}

		logger.Info("watching worksheets", "root", root, "pattern", svc.Settings().SheetPattern)
		for e := range source.Events() {
			ev, ok := e.(worksheet.Event)
			if !ok {
				continue
			}
			logger.Info("worksheet changed", "event", ev.String())
			if ev.Type == worksheet.EventDelete {
				continue
			}
			gradeAndPrint(ctx, cmd, svc, []string{ev.Path})
		}
		logger.Debug("watcher stopped", "state", watcher.State(), "reason", sigCtx.Reason().String())
	},
}

func gradeAndPrint(ctx context.Context, cmd *cobra.Command, svc *intervals.Runtime, paths []string) {
	if len(paths) == 0 {
		return
	}
	report, err := svc.GradeAll(ctx, paths)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("grading failed", "error", err)
		}
		return
	}
	if err := report.WriteText(cmd.OutOrStdout()); err != nil {
		slog.Error("writing report failed", "error", err)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
