package concurrent

import "testing"

func TestWorkerPoolProcessesAllJobs(t *testing.T) {
	pool := NewWorkerPool[int, int](4, 10)
	pool.Start(func(job int) int { return job * job })

	for i := 1; i <= 10; i++ {
		pool.Submit(i)
	}
	pool.Close()

	sum := 0
	count := 0
	for r := range pool.Results() {
		sum += r
		count++
	}

	if count != 10 {
		t.Fatalf("expected 10 results, got %d", count)
	}
	want := 385 // sum of squares 1..10
	if sum != want {
		t.Errorf("sum of squares = %d, want %d", sum, want)
	}
}

func TestWorkerPoolSizesToJobCount(t *testing.T) {
	pool := NewWorkerPool[int, int](8, 3)
	if pool.numWorkers != 3 {
		t.Errorf("numWorkers = %d, want 3 (capped to job count)", pool.numWorkers)
	}
}

func TestWorkerPoolDefaultsWhenNumWorkersNonPositive(t *testing.T) {
	pool := NewWorkerPool[int, int](0, 5)
	if pool.numWorkers <= 0 {
		t.Errorf("numWorkers = %d, want positive default", pool.numWorkers)
	}
}
