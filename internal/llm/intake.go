package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lucasvidela/jornada/internal/dateutil"
	"github.com/lucasvidela/jornada/internal/planner"
)

const intakePrompt = `You are a task intake assistant for a day planner.

Context:
- Current date and time: %s (format: DayOfWeek, YYYY-MM-DD HH:MM)
- The planner schedules work between 06:00 and 22:00 in blocks of at least 15 minutes.

User input: "%s"

Extract the tasks the user wants to get done. For each task:
1. Give it a short imperative title.
2. Estimate the effort in minutes if the user did not state one (round to 15-minute increments, minimum 15).
3. Assign priority 1-5 (5 = most important). Default to 3 when unclear.
4. Resolve any deadline to "YYYY-MM-DD HH:MM" (24-hour). Use "YYYY-MM-DD" when only a day is given. Leave empty when there is none.
5. Set morning or afternoon to true only when the user expresses a time-of-day preference.
6. Set split_ok to false only when the task must happen in one sitting.
7. Set max_chunk_min to cap single work blocks (default 120).

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "tasks": [
    {
      "title": "string",
      "estimate_min": 60,
      "priority": 3,
      "deadline": "YYYY-MM-DD HH:MM" or "",
      "morning": false,
      "afternoon": false,
      "split_ok": true,
      "max_chunk_min": 120,
      "notes": "string"
    }
  ]
}`

// intakeResponse is the parsed LLM response.
type intakeResponse struct {
	Tasks []extractedTask `json:"tasks"`
}

type extractedTask struct {
	Title       string `json:"title"`
	EstimateMin int    `json:"estimate_min"`
	Priority    int    `json:"priority"`
	Deadline    string `json:"deadline"`
	Morning     bool   `json:"morning"`
	Afternoon   bool   `json:"afternoon"`
	SplitOK     *bool  `json:"split_ok"`
	MaxChunkMin int    `json:"max_chunk_min"`
	Notes       string `json:"notes"`
}

// Intake converts natural-language input into planner tasks.
type Intake struct {
	client Client
}

// NewIntake creates an Intake backed by the given LLM client.
func NewIntake(client Client) *Intake {
	return &Intake{client: client}
}

// ExtractTasks asks the LLM to pull schedulable tasks out of free text.
func (in *Intake) ExtractTasks(ctx context.Context, input string, now time.Time) ([]planner.Task, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New("input is empty")
	}

	prompt := fmt.Sprintf(intakePrompt, now.Format("Monday, 2006-01-02 15:04"), input)
	messages := []Message{{Role: "system", Content: prompt}}

	var resp intakeResponse
	if err := in.client.ChatJSON(ctx, messages, &resp); err != nil {
		return nil, fmt.Errorf("extracting tasks: %w", err)
	}

	return resp.toTasks()
}

func (r *intakeResponse) toTasks() ([]planner.Task, error) {
	tasks := make([]planner.Task, 0, len(r.Tasks))
	for _, et := range r.Tasks {
		if strings.TrimSpace(et.Title) == "" {
			continue
		}

		t := planner.NewTask(et.Title)
		if et.EstimateMin > 0 {
			t.EstimateMin = et.EstimateMin
		}
		if et.Priority > 0 {
			t.Priority = et.Priority
		}
		if et.MaxChunkMin > 0 {
			t.MaxChunkMin = et.MaxChunkMin
		}
		if et.SplitOK != nil {
			t.SplitOK = *et.SplitOK
		}
		t.Morning = et.Morning
		t.Afternoon = et.Afternoon
		t.Notes = et.Notes

		if et.Deadline != "" {
			deadline, err := dateutil.ParseDeadline(et.Deadline)
			if err != nil {
				return nil, fmt.Errorf("task %q: %w", et.Title, err)
			}
			t.Deadline = deadline
		}

		tasks = append(tasks, t)
	}
	return tasks, nil
}
