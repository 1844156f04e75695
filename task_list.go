package oreum

import (
	"fmt"
	"sync"
)

// TaskList holds the current batch of daily tasks.
// A new batch replaces the previous one wholesale.
type TaskList struct {
	mu    sync.Mutex
	tasks []Task
}

// Replace swaps in a new batch.
func (l *TaskList) Replace(batch []Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append([]Task(nil), batch...)
}

// Tasks returns a copy of the current batch.
func (l *TaskList) Tasks() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Task{}, l.tasks...)
}

// Toggle flips the completion flag of the task with the given id and returns
// the updated task.
func (l *TaskList) Toggle(id string) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].IsCompleted = !l.tasks[i].IsCompleted
			return l.tasks[i], nil
		}
	}
	return Task{}, fmt.Errorf("task %q: %w", id, ErrNotFound)
}

// Progress returns the completed share of the batch as a percentage in
// [0, 100]. An empty batch reports 0.
func (l *TaskList) Progress() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range l.tasks {
		if t.IsCompleted {
			done++
		}
	}
	return (done*100 + len(l.tasks)/2) / len(l.tasks)
}
