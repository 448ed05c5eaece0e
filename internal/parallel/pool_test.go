package parallel

import (
	"sync/atomic"
	"testing"
)

func TestExecuteAllRunsEveryJob(t *testing.T) {
	pool := NewWorkerPool(4)
	var counter int64
	jobs := make([]Job, 200)
	for i := range jobs {
		jobs[i] = func() { atomic.AddInt64(&counter, 1) }
	}
	pool.ExecuteAll(jobs)
	if counter != int64(len(jobs)) {
		t.Fatalf("ran %d jobs, want %d", counter, len(jobs))
	}
}

func TestExecuteAllSingleJobInline(t *testing.T) {
	pool := NewWorkerPool(4)
	ran := false
	pool.ExecuteAll([]Job{func() { ran = true }})
	if !ran {
		t.Fatalf("single job was not run")
	}
}

func TestExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.ExecuteAll(nil)
}
