// Package taskqueue runs room render jobs on a fixed pool of worker
// goroutines.
package taskqueue

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
)

// WorkerFunc renders one item. It may submit follow-up jobs to q.
type WorkerFunc[T any] func(q *Q[T], item T)

// PanicFunc is told which item a job was running when it panicked.
type PanicFunc[T any] func(item T, err any)

type I[T any] struct {
	job  WorkerFunc[T]
	item T
}

type Q[T any] struct {
	c      chan I[T]
	wg     sync.WaitGroup
	worker WorkerFunc[T]

	onPanic  PanicFunc[T]
	panicked atomic.Int32
}

func NewQ[T any](workerCount int, chanSize int, worker WorkerFunc[T]) (q *Q[T]) {
	if worker == nil {
		panic("worker cannot be nil")
	}
	if workerCount <= 0 {
		panic("workerCount must be at least 1")
	}

	q = &Q[T]{
		c:      make(chan I[T], chanSize),
		worker: worker,
	}

	for n := 0; n < workerCount; n++ {
		go func() {
			for i := range q.c {
				q.runJob(i)
			}
		}()
	}

	return
}

// OnPanic registers f to be called with the item of any job that panics.
// Call it before submitting work.
func (q *Q[T]) OnPanic(f PanicFunc[T]) {
	q.onPanic = f
}

// Panicked is the number of jobs that have panicked so far.
func (q *Q[T]) Panicked() int {
	return int(q.panicked.Load())
}

func (q *Q[T]) runJob(i I[T]) {
	defer q.wg.Done()
	// a panicking room must not take its worker down with it:
	defer func() {
		if err := recover(); err != nil {
			q.panicked.Add(1)
			glog.Errorf("taskqueue: render of %v panicked: %v\n%s", i.item, err, debug.Stack())
			if q.onPanic != nil {
				q.onPanic(i.item, err)
			}
		}
	}()
	i.job(q, i.item)
}

func (q *Q[T]) SubmitItem(item T) {
	q.wg.Add(1)
	q.c <- I[T]{q.worker, item}
}

func (q *Q[T]) SubmitJob(item T, job WorkerFunc[T]) {
	q.wg.Add(1)
	q.c <- I[T]{job, item}
}

func (q *Q[T]) Wait() {
	q.wg.Wait()
}

func (q *Q[T]) Close() {
	close(q.c)
}
