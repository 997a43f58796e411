package threadpool

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestNew(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 8, 4)
	defer pool.Destroy()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if pool.Capacity() != 8 {
		t.Errorf("Capacity() = %d, want 8", pool.Capacity())
	}
	if pool.Size() != 0 {
		t.Errorf("Size() = %d, want 0", pool.Size())
	}
}

func TestNewDefaultWorkers(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 1, 0)
	defer pool.Destroy()

	if pool.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want %d", pool.Workers(), runtime.GOMAXPROCS(0))
	}
}

func TestRunAndWaitExecutesAllJobs(t *testing.T) {
	n := 1000
	pool := New(zaptest.NewLogger(t), n, 8)
	defer pool.Destroy()

	results := make([]int, n)
	for i := range n {
		if err := pool.Submit(func() { results[i] = i * 2 }); err != nil {
			t.Fatalf("Submit(%d) returned %v", i, err)
		}
	}
	if pool.Size() != n {
		t.Fatalf("Size() = %d, want %d", pool.Size(), n)
	}

	if err := pool.RunAndWait(); err != nil {
		t.Fatalf("RunAndWait() returned %v", err)
	}

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
	if pool.Size() != 0 {
		t.Errorf("Size() after run = %d, want 0", pool.Size())
	}
}

func TestRunAndWaitNoJobs(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 0, 16)
	defer pool.Destroy()

	if err := pool.RunAndWait(); err != nil {
		t.Errorf("RunAndWait() on empty pool returned %v", err)
	}
}

func TestSubmitFullQueue(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 2, 1)
	defer pool.Destroy()

	var ran atomic.Int32
	job := func() { ran.Add(1) }

	for range 2 {
		if err := pool.Submit(job); err != nil {
			t.Fatalf("Submit() returned %v", err)
		}
	}

	err := pool.Submit(job)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Submit() on full queue returned %v, want ErrCapacityExceeded", err)
	}
	if pool.Size() != 2 {
		t.Errorf("Size() = %d after rejected submit, want 2", pool.Size())
	}

	if err := pool.RunAndWait(); err != nil {
		t.Fatalf("RunAndWait() returned %v", err)
	}
	if got := ran.Load(); got != 2 {
		t.Errorf("executed %d jobs, want 2", got)
	}
}

func TestZeroCapacityRejectsSubmit(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 0, 1)
	defer pool.Destroy()

	if err := pool.Submit(func() {}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Submit() = %v, want ErrCapacityExceeded", err)
	}
}

func TestSubmitAfterRun(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 2, 1)
	defer pool.Destroy()

	if err := pool.RunAndWait(); err != nil {
		t.Fatalf("RunAndWait() returned %v", err)
	}
	if err := pool.Submit(func() {}); !errors.Is(err, ErrPoolRunning) {
		t.Errorf("Submit() after run = %v, want ErrPoolRunning", err)
	}
	if err := pool.RunAndWait(); !errors.Is(err, ErrPoolRunning) {
		t.Errorf("second RunAndWait() = %v, want ErrPoolRunning", err)
	}
}

func TestUseAfterDestroy(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 2, 1)
	pool.Destroy()
	pool.Destroy()

	if err := pool.Submit(func() {}); !errors.Is(err, ErrPoolDestroyed) {
		t.Errorf("Submit() after Destroy = %v, want ErrPoolDestroyed", err)
	}
	if err := pool.RunAndWait(); !errors.Is(err, ErrPoolDestroyed) {
		t.Errorf("RunAndWait() after Destroy = %v, want ErrPoolDestroyed", err)
	}
}

func TestPopOrderIsLastInFirstOut(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 5, 1)
	defer pool.Destroy()

	var order []int
	for i := range 5 {
		if err := pool.Submit(func() { order = append(order, i) }); err != nil {
			t.Fatal(err)
		}
	}
	if err := pool.RunAndWait(); err != nil {
		t.Fatal(err)
	}

	want := []int{4, 3, 2, 1, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestPanickingJobsAreReported(t *testing.T) {
	pool := New(zaptest.NewLogger(t), 10, 3)
	defer pool.Destroy()

	var ran atomic.Int32
	for i := range 10 {
		if err := pool.Submit(func() {
			ran.Add(1)
			if i%5 == 0 {
				panic("boom")
			}
		}); err != nil {
			t.Fatal(err)
		}
	}

	err := pool.RunAndWait()
	if !errors.Is(err, ErrJobPanicked) {
		t.Fatalf("RunAndWait() = %v, want ErrJobPanicked", err)
	}
	if got := ran.Load(); got != 10 {
		t.Errorf("executed %d jobs, want 10", got)
	}
}

func BenchmarkRunAndWait(b *testing.B) {
	const n = 1024
	for b.Loop() {
		pool := New(zap.NewNop(), n, 16)
		for range n {
			_ = pool.Submit(func() {})
		}
		_ = pool.RunAndWait()
		pool.Destroy()
	}
}
