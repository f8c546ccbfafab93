package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/dreamchess-go/internal/chess"
)

// depthProcessFunc reports the item depth as its node count.
func depthProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: uint64(item.Depth)}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Nodes: 1}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func testItem(i int) WorkItem {
	return WorkItem{Board: chess.NewBoard(), Depth: i, Index: i}
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start(context.Background())

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(testItem(i))
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolSumsNodes tests that results carry node counts back.
func TestPoolSumsNodes(t *testing.T) {
	pool := NewPool(depthProcessFunc(), WithWorkers(3), WithBufferSize(2))
	pool.Start(context.Background())

	go func() {
		for i := 1; i <= 5; i++ {
			pool.Submit(testItem(i))
		}
		pool.Close()
	}()

	var total uint64
	for r := range pool.Results() {
		total += r.Nodes
	}
	if total != 15 {
		t.Errorf("total nodes = %d; want 15", total)
	}
}

// TestPoolCancel tests that a cancelled context stops processing.
func TestPoolCancel(t *testing.T) {
	var processed int32
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2))
	pool.Start(ctx)

	go func() {
		for i := 0; i < 20; i++ {
			pool.Submit(testItem(i))
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != 0 {
		t.Errorf("results after cancel = %d; want 0", got)
	}
	if !pool.IsStopped() {
		t.Error("pool should be stopped after context cancellation")
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start(context.Background())

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(testItem(i))
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(testItem(i))
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestNewPoolOptions tests the functional options constructor.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []PoolOption
		wantWork   int
		wantBuffer int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
		{"multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(depthProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWork {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWork)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
