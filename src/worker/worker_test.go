package worker

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueRunsTasksInOrder(t *testing.T) {
	q := NewQueue("Test", 8)
	q.Listen()

	var mu sync.Mutex
	var ran []string
	for n := 0; n < 5; n++ {
		name := fmt.Sprintf("task-%d", n)
		q.Enqueue(Task{
			Name: name,
			Run: func() error {
				mu.Lock()
				defer mu.Unlock()
				ran = append(ran, name)
				return nil
			},
		})
	}
	q.WaitIdle()

	assert.Equal(t, []string{"task-0", "task-1", "task-2", "task-3", "task-4"}, ran)
	assert.Empty(t, q.DeadLetters())
}

func TestQueueRecordsFailuresAsDeadLetters(t *testing.T) {
	q := NewQueue("Test", 8)
	q.Listen()

	q.Enqueue(Task{Name: "ok", Run: func() error { return nil }})
	q.Enqueue(Task{Name: "boom", Run: func() error { return errors.New("smtp unreachable") }})
	q.WaitIdle()

	letters := q.DeadLetters()
	assert.Len(t, letters, 1)
	assert.Equal(t, "boom", letters[0].Task)
	assert.Equal(t, "smtp unreachable", letters[0].Error)
	assert.False(t, letters[0].FailedAt.IsZero())
}

func TestQueueKeepsServingAfterFailure(t *testing.T) {
	q := NewQueue("Test", 8)
	q.Listen()

	q.Enqueue(Task{Name: "boom", Run: func() error { return errors.New("boom") }})

	done := false
	q.Enqueue(Task{Name: "after", Run: func() error { done = true; return nil }})
	q.WaitIdle()

	assert.True(t, done)
}
