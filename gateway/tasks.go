package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oreum-app/oreum"
)

// wireTask is the element shape the task prompt asks the model for.
type wireTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// GenerateDailyTasks asks the model for a batch of micro-tasks suited to
// mood. Any failure, including an unbound credential, returns
// [oreum.FallbackTasks].
func (g *Gateway) GenerateDailyTasks(ctx context.Context, mood string) []oreum.Task {
	r := g.generateDailyTasks(ctx, mood)
	if !r.OK() {
		g.logger.Error("task generation failed", "op", "generate_daily_tasks", "error", r.Err)
	}
	return r.Or(oreum.FallbackTasks())
}

func (g *Gateway) generateDailyTasks(ctx context.Context, mood string) oreum.Result[[]oreum.Task] {
	m, _, err := g.boundModel(ctx)
	if err != nil {
		return oreum.Fail[[]oreum.Task](err)
	}
	text, err := m.Generate(ctx, oreum.GenerateRequest{
		Prompt: oreum.TasksPrompt(mood),
		JSON:   true,
	})
	if err != nil {
		return oreum.Fail[[]oreum.Task](err)
	}
	wire, err := parseTasks(text)
	if err != nil {
		return oreum.Fail[[]oreum.Task](err)
	}
	now := g.now()
	tasks := make([]oreum.Task, len(wire))
	for i, w := range wire {
		d := oreum.Difficulty(strings.ToLower(strings.TrimSpace(w.Difficulty)))
		if !d.Valid() {
			g.logger.Warn("unknown task difficulty, using easy", "op", "generate_daily_tasks", "difficulty", w.Difficulty)
			d = oreum.DifficultyEasy
		}
		tasks[i] = oreum.Task{
			ID:          oreum.NewTaskID(now, i),
			Title:       w.Title,
			Description: w.Description,
			Difficulty:  d,
		}
	}
	return oreum.Ok(tasks)
}

// parseTasks decodes a model response into task elements. A surrounding
// markdown code fence is tolerated. Empty text, invalid JSON and an empty
// array are all malformed.
func parseTasks(text string) ([]wireTask, error) {
	text = stripFence(strings.TrimSpace(text))
	if text == "" {
		return nil, fmt.Errorf("empty task list: %w", oreum.ErrMalformedResponse)
	}
	var wire []wireTask
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, fmt.Errorf("decode tasks: %v: %w", err, oreum.ErrMalformedResponse)
	}
	if len(wire) == 0 {
		return nil, fmt.Errorf("empty task list: %w", oreum.ErrMalformedResponse)
	}
	return wire, nil
}

// stripFence removes a ```json ... ``` wrapper if present.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
