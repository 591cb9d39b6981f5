package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasvidela/jornada/internal/dateutil"
	"github.com/lucasvidela/jornada/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date  string
		start string
		end   string
		desc  string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a committed event",
		Long: `Add a committed event to your calendar.

Example:
  jornada add "Team standup" --date=2025-03-10 --start=09:00 --end=09:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}
			startTime, err := parseClock(day, start)
			if err != nil {
				return fmt.Errorf("invalid start time: %w", err)
			}
			endTime, err := parseClock(day, end)
			if err != nil {
				return fmt.Errorf("invalid end time: %w", err)
			}

			e, err := event.New(args[0], desc, startTime, endTime)
			if err != nil {
				return err
			}

			if err := a.repo.CreateEvent(context.Background(), e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Created event #%d: %s %s %s-%s\n",
				e.ID, e.Title,
				e.Start.Format("2006-01-02"),
				e.Start.Format("15:04"), e.End.Format("15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or today/tomorrow/weekday, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// parseClock combines a day with an "HH:MM" clock value.
func parseClock(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
