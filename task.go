package oreum

import (
	"fmt"
	"time"
)

// Difficulty is an informational tag on a Task.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known tags.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Task is one micro-task of a daily batch.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	Difficulty  Difficulty `json:"difficulty"`
}

// NewTaskID returns the id for the index-th task of a batch generated at now.
func NewTaskID(now time.Time, index int) string {
	return fmt.Sprintf("task-%d-%d", now.UnixNano(), index)
}

// FallbackTasks returns a fresh copy of the fixed batch used whenever task
// generation fails.
func FallbackTasks() []Task {
	return []Task{
		{ID: "def-1", Title: "창문 열고 환기하기", Description: "신선한 공기를 1분만 마셔보세요.", Difficulty: DifficultyEasy},
		{ID: "def-2", Title: "좋아하는 노래 한 곡 듣기", Description: "기분 전환을 위해 음악을 들어보세요.", Difficulty: DifficultyEasy},
		{ID: "def-3", Title: "책상 정리하기", Description: "공부나 활동을 위한 작은 공간을 만들어보세요.", Difficulty: DifficultyMedium},
	}
}
