package oreum_test

import (
	"testing"
	"time"

	"github.com/oreum-app/oreum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficulty_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, oreum.DifficultyEasy.Valid())
	assert.True(t, oreum.DifficultyMedium.Valid())
	assert.True(t, oreum.DifficultyHard.Valid())
	assert.False(t, oreum.Difficulty("").Valid())
	assert.False(t, oreum.Difficulty("Easy").Valid())
}

func TestNewTaskID(t *testing.T) {
	t.Parallel()
	now := time.Unix(0, 1700000000123456789)
	assert.Equal(t, "task-1700000000123456789-0", oreum.NewTaskID(now, 0))
	assert.NotEqual(t, oreum.NewTaskID(now, 1), oreum.NewTaskID(now, 2))
}

func TestFallbackTasks(t *testing.T) {
	t.Parallel()
	tasks := oreum.FallbackTasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "창문 열고 환기하기", tasks[0].Title)
	assert.Equal(t, "좋아하는 노래 한 곡 듣기", tasks[1].Title)
	assert.Equal(t, "책상 정리하기", tasks[2].Title)
	for _, task := range tasks {
		assert.False(t, task.IsCompleted)
		assert.True(t, task.Difficulty.Valid())
		assert.NotEmpty(t, task.ID)
	}
}

func TestTaskList(t *testing.T) {
	t.Parallel()

	t.Run("empty list has zero progress", func(t *testing.T) {
		t.Parallel()
		var l oreum.TaskList
		assert.Empty(t, l.Tasks())
		assert.Equal(t, 0, l.Progress())
	})

	t.Run("toggle flips completion", func(t *testing.T) {
		t.Parallel()
		var l oreum.TaskList
		l.Replace(oreum.FallbackTasks())

		task, err := l.Toggle("def-2")
		require.NoError(t, err)
		assert.True(t, task.IsCompleted)
		assert.Equal(t, 33, l.Progress())

		_, err = l.Toggle("def-3")
		require.NoError(t, err)
		assert.Equal(t, 67, l.Progress())

		task, err = l.Toggle("def-2")
		require.NoError(t, err)
		assert.False(t, task.IsCompleted)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		var l oreum.TaskList
		_, err := l.Toggle("nope")
		assert.ErrorIs(t, err, oreum.ErrNotFound)
	})

	t.Run("replace swaps the batch wholesale", func(t *testing.T) {
		t.Parallel()
		var l oreum.TaskList
		l.Replace(oreum.FallbackTasks())
		_, _ = l.Toggle("def-1")
		l.Replace([]oreum.Task{{ID: "task-1-0", Title: "new"}})

		tasks := l.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "new", tasks[0].Title)
		assert.Equal(t, 0, l.Progress())
	})

	t.Run("tasks returns a copy", func(t *testing.T) {
		t.Parallel()
		var l oreum.TaskList
		batch := oreum.FallbackTasks()
		l.Replace(batch)
		batch[0].Title = "mutated"
		got := l.Tasks()
		got[1].Title = "mutated"
		assert.Equal(t, "창문 열고 환기하기", l.Tasks()[0].Title)
		assert.Equal(t, "좋아하는 노래 한 곡 듣기", l.Tasks()[1].Title)
	})
}
