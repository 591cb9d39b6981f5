package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasvidela/jornada/internal/dateutil"
	"github.com/lucasvidela/jornada/internal/llm"
)

func (a *App) suggestCmd() *cobra.Command {
	var (
		date   string
		save   bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [input]",
		Short: "Extract tasks from free text and plan with them",
		Long: `Use the configured LLM to pull schedulable tasks out of natural
language, then run the usual deterministic planning over them.

Example:
  jornada suggest "finish the thesis chapter by friday, also gym and emails"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			ctx := context.Background()
			tasks, err := llm.NewIntake(client).ExtractTasks(ctx, args[0], time.Now())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks extracted.")
				return nil
			}

			fmt.Printf("Extracted %d task(s):\n", len(tasks))
			for _, t := range tasks {
				line := fmt.Sprintf("  - %s (%dm, p%d", t.Title, t.EstimateMin, t.Priority)
				if !t.Deadline.IsZero() {
					line += ", due " + t.Deadline.Format("2006-01-02 15:04")
				}
				line += ")"
				fmt.Println(line)
			}
			fmt.Println()

			if dryRun {
				return nil
			}

			return a.runPlan(ctx, day, tasks, save, false)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to plan (default: today)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the planned blocks")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only show extracted tasks, do not plan")
	return cmd
}
