package ui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/lucasvidela/jornada/internal/dateutil"
	"github.com/lucasvidela/jornada/internal/event"
	"github.com/lucasvidela/jornada/internal/planner"
)

func (a *App) planCmd() *cobra.Command {
	var (
		date    string
		save    bool
		copyOut bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a day around its committed events",
		Long: `Compute free windows between the day's committed events, carve task
chunks into them with transition buffers, then fit habits into what is left.

Example:
  jornada plan --date=tomorrow --save`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor || !a.config.UI.Color {
				DisableColor()
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			return a.runPlan(context.Background(), day, planner.DefaultTasks(), save, copyOut)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or today/tomorrow/weekday, default: today)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the planned blocks (replaces previously saved ones)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the plan to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// runPlan plans one day with the given task pool and prints the result.
// Shared by the plan and suggest commands.
func (a *App) runPlan(ctx context.Context, day time.Time, tasks []planner.Task, save, copyOut bool) error {
	stored, err := a.repo.ListEventsByDay(ctx, day)
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}
	existing := busyOnly(derefEvents(stored))

	result := planner.New(nil).PlanDay(day, existing, tasks, planner.DefaultHabits())

	fmt.Printf("=== Plan for %s ===\n\n", formatHeader(day.Format("Monday, January 2, 2006")))

	all := make([]event.Event, 0, len(existing)+len(result.Blocks))
	all = append(all, existing...)
	all = append(all, result.Blocks...)
	sort.Slice(all, func(i, j int) bool { return all[i].Start.Before(all[j].Start) })

	PrintBlocks(all)
	fmt.Println()
	fmt.Println(formatInsight(result.Summary))

	if save {
		if _, err := a.repo.DeletePlanned(ctx, day); err != nil {
			return fmt.Errorf("clearing previous plan: %w", err)
		}
		blocks := make([]*event.Event, len(result.Blocks))
		for i := range result.Blocks {
			blocks[i] = &result.Blocks[i]
		}
		if err := a.repo.CreateEvents(ctx, blocks); err != nil {
			return fmt.Errorf("saving plan: %w", err)
		}
		fmt.Println(formatMuted(fmt.Sprintf("Saved %d block(s).", len(blocks))))
	}

	if copyOut {
		text := PlanText(day.Format("2006-01-02"), all)
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copying plan: %w", err)
		}
		fmt.Println(formatMuted("Plan copied to clipboard."))
	}

	return nil
}
