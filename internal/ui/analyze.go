package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasvidela/jornada/internal/dateutil"
	"github.com/lucasvidela/jornada/internal/planner"
)

func (a *App) analyzeCmd() *cobra.Command {
	var date string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a day's schedule",
		Long: `Summarize a day's schedule and report insights, stress risk and
work/recovery balance.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor || !a.config.UI.Color {
				DisableColor()
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			stored, err := a.repo.ListEventsByDay(context.Background(), day)
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}
			events := derefEvents(stored)

			fmt.Printf("=== %s ===\n\n", formatHeader(day.Format("Monday, January 2, 2006")))
			fmt.Println(planner.AnalyzeSchedule(events))
			fmt.Println()

			fmt.Println(formatHeader("Insights"))
			fmt.Println(formatInsight(planner.Insights(events).String()))
			fmt.Println()

			fmt.Println(formatHeader("Stress"))
			fmt.Println(formatInsight(planner.Stress(events).String()))
			fmt.Println()

			fmt.Println(formatHeader("Balance"))
			fmt.Println(formatInsight(planner.Balance(events).String()))
			fmt.Println()

			fmt.Println(formatHeader("Suggested goals"))
			for _, g := range planner.SuggestGoals() {
				fmt.Printf("  - %s\n", g)
			}
			fmt.Println()
			fmt.Println(formatHeader("Habit ideas"))
			for _, h := range planner.RecommendHabits() {
				fmt.Printf("  - %s\n", h)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or today/tomorrow/weekday, default: today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
