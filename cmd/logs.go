package cmd

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/kidlingo/internal/logbuf"
	"github.com/abhisek/kidlingo/internal/ui/theme"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show log lines captured by the last pipeline run",
	Long: `Show the in-memory log buffer saved by the most recent watch, process or
process-all run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		level, _ := cmd.Flags().GetString("level")
		source, _ := cmd.Flags().GetString("source")
		since, _ := cmd.Flags().GetDuration("since")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		entries, err := logbuf.LoadSnapshot(logSnapshotPath(dbPath))
		if err != nil {
			return err
		}
		entries = filterLogs(entries, level, source, since, time.Now())
		if limit > 0 && len(entries) > limit {
			entries = entries[len(entries)-limit:]
		}
		if len(entries) == 0 {
			fmt.Println("No log entries captured.")
			return nil
		}
		printLogs(entries)
		return nil
	},
}

func init() {
	logsCmd.Flags().IntP("limit", "n", 100, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringP("level", "l", "", "Minimum level: debug, info, warn or error")
	logsCmd.Flags().StringP("source", "s", "", "Only entries from this component (e.g. pipeline, watcher)")
	logsCmd.Flags().Duration("since", 0, "Only entries newer than this (e.g. 30m)")
}

var levelRank = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

func filterLogs(entries []logbuf.Entry, level, source string, since time.Duration, now time.Time) []logbuf.Entry {
	minRank := levelRank[strings.ToUpper(level)]
	var cutoff time.Time
	if since > 0 {
		cutoff = now.Add(-since)
	}

	out := entries[:0:0]
	for _, e := range entries {
		rank, ok := levelRank[e.Level]
		if !ok {
			rank = levelRank["ERROR"]
		}
		if rank < minRank {
			continue
		}
		if source != "" && !sourceMatches(e.Source, source) {
			continue
		}
		if !cutoff.IsZero() && e.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// sourceMatches reports whether want names the whole source or one of its
// dotted parts, so "queue" matches "pipeline.queue".
func sourceMatches(source, want string) bool {
	if strings.EqualFold(source, want) {
		return true
	}
	for _, part := range strings.Split(source, ".") {
		if strings.EqualFold(part, want) {
			return true
		}
	}
	return false
}

func printLogs(entries []logbuf.Entry) {
	if len(entries) == 0 {
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.TableBorder).
		Headers("Time", "Level", "Source", "Message").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeader
			}
			if col == 1 {
				return theme.Level(entries[row].Level).Padding(0, 1)
			}
			return theme.TableCell
		})
	for _, e := range entries {
		t.Row(e.Timestamp.Local().Format("15:04:05"), e.Level, e.Source, truncate(e.Message, 100))
	}
	fmt.Println(t.Render())
}
