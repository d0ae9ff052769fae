package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlightRunsOnce(t *testing.T) {
	var g SingleFlight
	var loads int32

	const callers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(callers)

	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, _ := g.Do("analysis:snap-1", func() (any, error) {
				atomic.AddInt32(&loads, 1)
				time.Sleep(20 * time.Millisecond)
				return "report", nil
			})
			if err != nil {
				t.Errorf("deduplicated call failed: %v", err)
			}
			if val != "report" {
				t.Errorf("deduplicated call returned %v", val)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}
}

func TestSingleFlightSequentialCallsRunSeparately(t *testing.T) {
	var g SingleFlight
	var loads int32

	for i := 0; i < 3; i++ {
		if _, err, shared := g.Do("analysis:snap-2", func() (any, error) {
			atomic.AddInt32(&loads, 1)
			return nil, nil
		}); err != nil || shared {
			t.Fatalf("call %d: err=%v shared=%v", i, err, shared)
		}
	}
	if loads != 3 {
		t.Fatalf("expected three loads, got %d", loads)
	}
}
