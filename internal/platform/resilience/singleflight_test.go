package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFlight_Do(t *testing.T) {
	var g Flight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var sharedCount int32
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, shared := g.Do("GET /v4/leagues/selection", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || val != "ok" {
				t.Errorf("flight call failed: %q %v", val, err)
			}
			if shared {
				atomic.AddInt32(&sharedCount, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := atomic.LoadInt32(&sharedCount); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
	if g.InFlight() != 0 {
		t.Fatalf("expected no in-flight keys after completion")
	}
}

func TestFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g Flight[int]
	boom := errors.New("boom")

	_, err, _ := g.Do("a", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	val, err, shared := g.Do("a", func() (int, error) { return 7, nil })
	if err != nil || val != 7 || shared {
		t.Fatalf("expected fresh execution after completion, got %d %v %v", val, err, shared)
	}
}
