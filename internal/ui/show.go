package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasvidela/jornada/internal/dateutil"
)

func (a *App) showCmd() *cobra.Command {
	var date string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's calendar blocks",
		Long: `Display a day's events, including any saved planned blocks.

Buffers are rendered muted. Use 'jornada analyze' for schedule insights.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor || !a.config.UI.Color {
				DisableColor()
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			events, err := a.repo.ListEventsByDay(context.Background(), day)
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}

			if len(events) == 0 {
				fmt.Printf("No blocks on %s.\n", day.Format("2006-01-02"))
				return nil
			}

			fmt.Printf("=== %s ===\n\n", formatHeader(day.Format("Monday, January 2, 2006")))
			PrintBlocks(derefEvents(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or today/tomorrow/weekday, default: today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
