package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/kidlingo/internal/pipeline"
	"github.com/abhisek/kidlingo/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a folder and turn new videos into lessons",
	Long: `Watch the video folder and process every new file, one at a time.

Stuck videos are swept back into the queue periodically. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		wcfg := a.cfg.Watcher
		if cmd.Flags().Changed("process-existing") {
			wcfg.ProcessExisting, _ = cmd.Flags().GetBool("process-existing")
		}
		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			wcfg.Dir = dir
		}
		if wcfg.Dir, err = filepath.Abs(wcfg.Dir); err != nil {
			return fmt.Errorf("resolve watch dir: %w", err)
		}
		poll, _ := cmd.Flags().GetDuration("poll")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		proc, err := a.processor(ctx)
		if err != nil {
			return err
		}
		w := watcher.New(wcfg, a.store.MediaRepo(), a.log)
		sweeper := pipeline.NewSweeper(a.store.MediaRepo(), a.log)
		queue := pipeline.NewQueue(proc, sweeper, w.Registered(), pipeline.QueueConfig{
			PollInterval:  poll,
			SweepInterval: a.cfg.Sweep.Interval,
			StuckAfter:    a.cfg.Sweep.StuckAfter,
		})
		snapshot := logSnapshotPath(a.dbPath)
		queue.AfterDrain = func() {
			if err := a.logs.SaveSnapshot(snapshot); err != nil {
				a.log.Warn("could not save log snapshot", "error", err)
			}
		}

		// Items left processing by a previous run that died are recovered
		// before the first drain.
		if _, err := sweeper.Sweep(ctx, a.cfg.Sweep.StuckAfter, false); err != nil {
			a.log.Error("startup sweep failed", "error", err)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return w.Run(gctx) })
		g.Go(func() error { return queue.Run(gctx) })

		a.log.Info("kidlingo watching", "dir", wcfg.Dir, "db", a.dbPath)
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		a.log.Info("shutting down")
		return nil
	},
}

func init() {
	watchCmd.Flags().Bool("process-existing", false, "Register videos already in the folder on start")
	watchCmd.Flags().String("dir", "", "Folder to watch (overrides config)")
	watchCmd.Flags().Duration("poll", time.Minute, "How often to re-check the store for pending videos (0 disables)")
}
