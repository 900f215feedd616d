package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidlingo/internal/pipeline"
	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/ui/theme"
)

var processCmd = &cobra.Command{
	Use:   "process <id|path>",
	Short: "Generate a lesson for one video",
	Long: `Run a single video through transcription and lesson generation.

The argument is either a media ID from "kidlingo status" or a path to a
video file. Unknown paths are registered first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		showLogs, _ := cmd.Flags().GetBool("show-logs")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		m, err := resolveMedia(ctx, a.store.MediaRepo(), args[0])
		if err != nil {
			return err
		}
		proc, err := a.processor(ctx)
		if err != nil {
			return err
		}

		lesson, perr := proc.Process(ctx, m.ID, pipeline.Options{Force: force})
		if showLogs {
			printLogs(a.logs.Entries(0, time.Time{}))
		}
		if perr != nil {
			return perr
		}
		if lesson == nil {
			fmt.Println(theme.Hint.Render(fmt.Sprintf("Media %d is already being processed.", m.ID)))
			return nil
		}
		fmt.Printf("%s %s (%d cards)\n", theme.Correct.Render("Lesson ready:"), lesson.Title, lesson.CardCount)
		return nil
	},
}

var processAllCmd = &cobra.Command{
	Use:   "process-all",
	Short: "Generate lessons for every pending or failed video",
	RunE: func(cmd *cobra.Command, args []string) error {
		showLogs, _ := cmd.Flags().GetBool("show-logs")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		proc, err := a.processor(ctx)
		if err != nil {
			return err
		}

		report, err := proc.ProcessPending(ctx)
		if showLogs {
			printLogs(a.logs.Entries(0, time.Time{}))
		}
		if err != nil {
			return err
		}
		printBatchReport(report)
		if len(report.Errors) > 0 {
			return fmt.Errorf("%d of %d videos failed", len(report.Errors), report.Total)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().Bool("force", false, "Reprocess even if a lesson exists, replacing it")
	processCmd.Flags().Bool("show-logs", false, "Print captured log lines when done")
	processAllCmd.Flags().Bool("show-logs", false, "Print captured log lines when done")
}

// resolveMedia looks arg up as a media ID, then as a file path. Paths not
// yet in the store are registered.
func resolveMedia(ctx context.Context, repo store.MediaRepo, arg string) (*store.Media, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		return repo.Get(ctx, id)
	}

	path, err := filepath.Abs(arg)
	if err != nil {
		return nil, fmt.Errorf("resolve path %q: %w", arg, err)
	}
	m, err := repo.GetByPath(ctx, path)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("video file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	m, _, err = repo.Register(ctx, store.NewMedia{
		Path:      path,
		Name:      filepath.Base(path),
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	})
	return m, err
}

func printBatchReport(r *pipeline.BatchReport) {
	fmt.Println(theme.Title.Render("Batch complete"))
	fmt.Printf("  Videos:    %d\n", r.Total)
	fmt.Printf("  Processed: %s\n", theme.Correct.Render(strconv.Itoa(r.Processed)))
	fmt.Printf("  Skipped:   %s\n", theme.Pending.Render(strconv.Itoa(r.Skipped)))
	if len(r.Errors) == 0 {
		return
	}
	fmt.Printf("  Failed:    %s\n", theme.Incorrect.Render(strconv.Itoa(len(r.Errors))))
	for _, e := range r.Errors {
		fmt.Printf("    #%d %s: %v\n", e.MediaID, e.Name, e.Err)
	}
}
