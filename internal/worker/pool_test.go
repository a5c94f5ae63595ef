package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"
	"time"
)

type mockJob struct {
	id      int
	delay   time.Duration
	fail    bool
	counter *int32
}

type mockResult struct {
	id  int
	err error
}

func (r *mockResult) GetError() error { return r.err }

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.delay > 0 {
		select {
		case <-time.After(j.delay):
		case <-ctx.Done():
			return &mockResult{id: j.id, err: ctx.Err()}
		}
	}
	if j.counter != nil {
		atomic.AddInt32(j.counter, 1)
	}
	if j.fail {
		return &mockResult{id: j.id, err: errors.New("job failed")}
	}
	return &mockResult{id: j.id}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var executed int32

	pool := NewPool(3)
	pool.Start()

	const jobs = 20
	go func() {
		defer pool.Finish()
		for i := 0; i < jobs; i++ {
			pool.Submit(&mockJob{id: i, counter: &executed})
		}
	}()

	results := pool.Wait()
	if len(results) != jobs {
		t.Errorf("expected %d results, got %d", jobs, len(results))
	}
	if got := atomic.LoadInt32(&executed); got != jobs {
		t.Errorf("expected %d executions, got %d", jobs, got)
	}

	ids := make([]int, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.(*mockResult).id)
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i {
			t.Fatalf("missing or duplicate job id: %v", ids)
		}
	}
}

func TestPool_MoreJobsThanQueueCapacity(t *testing.T) {
	// One worker, queue capacity 2: submission must interleave with
	// collection rather than deadlock.
	pool := NewPool(1)
	pool.Start()

	const jobs = 50
	go func() {
		defer pool.Finish()
		for i := 0; i < jobs; i++ {
			pool.Submit(&mockJob{id: i})
		}
	}()

	done := make(chan []Result, 1)
	go func() { done <- pool.Wait() }()

	select {
	case results := <-done:
		if len(results) != jobs {
			t.Errorf("expected %d results, got %d", jobs, len(results))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("pool deadlocked on a batch larger than the queue")
	}
}

func TestPool_CarriesJobErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	go func() {
		defer pool.Finish()
		pool.Submit(&mockJob{id: 0})
		pool.Submit(&mockJob{id: 1, fail: true})
	}()

	failures := 0
	for _, r := range pool.Wait() {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failed result, got %d", failures)
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	for i := 0; i < 2; i++ {
		pool.Submit(&mockJob{id: i, delay: 5 * time.Second})
	}

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not interrupt running jobs")
	}
}

func TestReadFileList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.txt")
	content := "doc1.txt\n\n# skipped comment\n  doc2.txt  \ndoc3.html\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write list file: %v", err)
	}

	paths, err := ReadFileList(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"doc1.txt", "doc2.txt", "doc3.html"}
	if fmt.Sprint(paths) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, paths)
	}
}

func TestReadFileList_Missing(t *testing.T) {
	if _, err := ReadFileList(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected an error for a missing list file")
	}
}
