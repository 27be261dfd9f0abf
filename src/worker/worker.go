package worker

import (
	"log"
	"sync"
	"time"
)

// Task is one unit of deferred work, scheduled after an HTTP response has
// already been sent. Its error never reaches a client.
type Task struct {
	Name string
	Run  func() error
}

type DeadLetter struct {
	Task     string
	Error    string
	FailedAt time.Time
}

const deadLetterCap = 256

// Queue is the in-process deferred-task queue. A single consumer goroutine
// drains it, so tasks from one submission run in the order they were enqueued;
// tasks from different submissions interleave freely at enqueue time.
type Queue struct {
	name  string
	tasks chan Task
	wg    sync.WaitGroup

	mu          sync.Mutex
	deadLetters []DeadLetter
}

func NewQueue(name string, size int) *Queue {
	return &Queue{
		name:  name,
		tasks: make(chan Task, size),
	}
}

// Listen starts the consumer goroutine.
func (q *Queue) Listen() {
	log.Printf("%s: Listening for tasks...", q.name)
	go func() {
		for task := range q.tasks {
			if err := task.Run(); err != nil {
				log.Printf("[%s] task %s failed: %s\n", q.name, task.Name, err.Error())
				q.addDeadLetter(task.Name, err)
			}
			q.wg.Done()
		}
	}()
}

func (q *Queue) Enqueue(task Task) {
	q.wg.Add(1)
	q.tasks <- task
}

// WaitIdle blocks until every enqueued task has run. Used by tests.
func (q *Queue) WaitIdle() {
	q.wg.Wait()
}

func (q *Queue) addDeadLetter(name string, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.deadLetters) >= deadLetterCap {
		q.deadLetters = q.deadLetters[1:]
	}
	q.deadLetters = append(q.deadLetters, DeadLetter{
		Task:     name,
		Error:    err.Error(),
		FailedAt: time.Now(),
	})
}

func (q *Queue) DeadLetters() []DeadLetter {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]DeadLetter, len(q.deadLetters))
	copy(out, q.deadLetters)
	return out
}

var queue *Queue

// GetQueue returns the shared notifications queue, starting it on first use.
func GetQueue() *Queue {
	if queue != nil {
		return queue
	}
	queue = NewQueue("Notifications", 64)
	queue.Listen()
	return queue
}

// NewDefaultQueue swaps the shared queue. Used by tests.
func NewDefaultQueue(q *Queue) {
	queue = q
}
