package jobs

import (
	"context"
	"sync"
)

type Task func()

// WorkerPool runs submitted tasks on a fixed number of goroutines.
type WorkerPool struct {
	pool chan Task
	wg   sync.WaitGroup
	once sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{pool: make(chan Task, size)}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		task()
		wp.wg.Done()
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.wg.Add(1)
	select {
	case <-ctx.Done():
		wp.wg.Done()
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Wait blocks until every accepted task has finished.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) Close() {
	wp.once.Do(func() { close(wp.pool) })
}
