package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidlingo/internal/pipeline"
	"github.com/abhisek/kidlingo/internal/ui/theme"
)

var resetStuckCmd = &cobra.Command{
	Use:   "reset-stuck",
	Short: "Reset videos stuck in processing",
	Long: `Find videos that have been processing for longer than --hours and put
them back in the queue. Videos whose file is gone are marked failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		olderThan := a.cfg.Sweep.StuckAfter
		if cmd.Flags().Changed("hours") {
			hours, _ := cmd.Flags().GetFloat64("hours")
			if hours <= 0 {
				return fmt.Errorf("--hours must be positive")
			}
			olderThan = time.Duration(hours * float64(time.Hour))
		}

		report, err := pipeline.NewSweeper(a.store.MediaRepo(), a.log).Sweep(cmd.Context(), olderThan, dryRun)
		if err != nil {
			return err
		}

		if len(report.Items) == 0 {
			fmt.Printf("No videos stuck for more than %s.\n", olderThan)
			return nil
		}

		verb := map[pipeline.SweepAction]string{pipeline.SweepReset: "reset to pending", pipeline.SweepFailed: "marked failed (file missing)"}
		if dryRun {
			fmt.Println(theme.Hint.Render("Dry run: nothing was changed."))
			verb = map[pipeline.SweepAction]string{pipeline.SweepReset: "would reset", pipeline.SweepFailed: "would mark failed (file missing)"}
		}
		for _, it := range report.Items {
			style := theme.Active
			if it.Action == pipeline.SweepFailed {
				style = theme.Incorrect
			}
			fmt.Printf("  #%-5d %-32s stuck %-8s %s\n",
				it.MediaID, truncate(it.Name, 32), it.Age.Round(time.Minute), style.Render(verb[it.Action]))
		}
		fmt.Printf("\n%d reset, %d failed\n", report.Reset, report.Failed)
		return nil
	},
}

func init() {
	resetStuckCmd.Flags().Float64("hours", 2, "Age in hours after which a processing video counts as stuck")
	resetStuckCmd.Flags().Bool("dry-run", false, "List stuck videos without changing them")
}
