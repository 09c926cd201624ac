package parallel

import (
	"errors"
	"fmt"
	"sync"
)

func CreateJobQueue(queueSize int, poolSize int) *JobQueue {

	group := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go group.worker()
	}
	return group
}

// JobQueue runs jobs on a fixed pool of workers and collects their failures.
type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	mu          sync.Mutex
	errs        []error
}

func (queue *JobQueue) Add(function func() error) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

// Wait blocks until every added job finished and returns their joined errors.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	queue.mu.Lock()
	defer queue.mu.Unlock()
	return errors.Join(queue.errs...)
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.mu.Lock()
			queue.errs = append(queue.errs, err)
			queue.mu.Unlock()
		}
		queue.waitGroup.Done()
	}
}
