package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/ui/theme"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show queue counts and recent videos",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		filter, _ := cmd.Flags().GetString("status")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, _, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		counts, err := s.MediaRepo().CountByStatus(ctx)
		if err != nil {
			return err
		}
		lessons, err := s.LessonRepo().Count(ctx)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Queue"))
		for _, st := range []store.MediaStatus{store.StatusPending, store.StatusProcessing, store.StatusDone, store.StatusError} {
			fmt.Printf("  %-11s %s\n", st, theme.Status(string(st)).Render(fmt.Sprint(counts[st])))
		}
		fmt.Printf("  %-11s %d\n\n", "lessons", lessons)

		media, err := s.MediaRepo().List(ctx, store.ListOpts{Status: store.MediaStatus(filter), Limit: limit})
		if err != nil {
			return err
		}
		if len(media) == 0 {
			fmt.Println("No videos registered yet.")
			return nil
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(theme.TableBorder).
			Headers("ID", "Name", "Status", "Stage", "Message", "Added").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return theme.TableHeader
				}
				if col == 2 {
					return theme.Status(string(media[row].Status)).Padding(0, 1)
				}
				return theme.TableCell
			})
		for _, m := range media {
			msg := m.ProcessingMessage
			if m.Status == store.StatusError && m.ErrorMessage != "" {
				msg = m.ErrorMessage
			}
			t.Row(
				fmt.Sprint(m.ID),
				truncate(m.Name, 32),
				string(m.Status),
				string(m.Stage),
				truncate(msg, 48),
				m.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		fmt.Println(t.Render())
		return nil
	},
}

func init() {
	statusCmd.Flags().IntP("limit", "n", 20, "Number of videos to list")
	statusCmd.Flags().String("status", "", "Only list videos with this status (pending, processing, done, error)")
}
