package taskqueue

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestQ_RunsEveryItem(t *testing.T) {
	var sum int64
	q := NewQ[int](4, 16, func(q *Q[int], n int) {
		atomic.AddInt64(&sum, int64(n))
	})
	for n := 1; n <= 100; n++ {
		q.SubmitItem(n)
	}
	q.Wait()
	q.Close()

	if sum != 5050 {
		t.Fatalf("got %d, want 5050", sum)
	}
}

func TestQ_SubmitJobFromWorker(t *testing.T) {
	var count int64
	var leaf WorkerFunc[int] = func(q *Q[int], n int) {
		atomic.AddInt64(&count, 1)
	}
	q := NewQ[int](2, 64, func(q *Q[int], n int) {
		for i := 0; i < n; i++ {
			q.SubmitJob(i, leaf)
		}
	})
	q.SubmitItem(10)
	q.Wait()
	q.Close()

	if count != 10 {
		t.Fatalf("got %d, want 10", count)
	}
}

func TestQ_RecoversPanics(t *testing.T) {
	var done int64
	q := NewQ[int](1, 8, func(q *Q[int], n int) {
		if n == 2 {
			panic("bad room")
		}
		atomic.AddInt64(&done, 1)
	})
	for n := 1; n <= 4; n++ {
		q.SubmitItem(n)
	}
	q.Wait()
	q.Close()

	if done != 3 {
		t.Fatalf("got %d jobs done, want 3", done)
	}
	if got := q.Panicked(); got != 1 {
		t.Fatalf("Panicked() = %d, want 1", got)
	}
}

func TestQ_OnPanicReportsRoomFile(t *testing.T) {
	var mu sync.Mutex
	var failed []string

	q := NewQ[string](2, 8, func(q *Q[string], path string) {
		if path == "room-0c9.json" {
			panic("truncated object list")
		}
	})
	q.OnPanic(func(path string, err any) {
		mu.Lock()
		failed = append(failed, path)
		mu.Unlock()
	})
	for _, path := range []string{"room-012.json", "room-0c9.json", "room-104.json"} {
		q.SubmitItem(path)
	}
	q.Wait()
	q.Close()

	if len(failed) != 1 || failed[0] != "room-0c9.json" {
		t.Fatalf("failed = %v, want [room-0c9.json]", failed)
	}
}

func TestNewQ_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a nil worker")
		}
	}()
	NewQ[int](1, 1, nil)
}
