package shutdown

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"basic-gui-threads/internal/logger"
)

func TestRunExecutesStepsInOrder(t *testing.T) {
	m := NewManager(logger.NewNop())

	var order []string
	m.Add("animator", func() { order = append(order, "animator") })
	m.Add("window", func() { order = append(order, "window") })
	m.Add("app", func() { order = append(order, "app") })

	m.Run()

	want := []string{"animator", "window", "app"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	select {
	case <-m.Done():
	default:
		t.Error("Done channel not closed after Run")
	}
}

func TestRunHappensOnce(t *testing.T) {
	m := NewManager(logger.NewNop())

	var mu sync.Mutex
	calls := 0
	m.Add("count", func() {
		mu.Lock()
		calls++
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Run()
		}()
	}
	wg.Wait()
	m.Run()

	if calls != 1 {
		t.Errorf("step ran %d times, want 1", calls)
	}
}

func TestRunWaitsForEachStep(t *testing.T) {
	m := NewManager(logger.NewNop())

	stopped := false
	m.Add("slow stop", func() {
		time.Sleep(30 * time.Millisecond)
		stopped = true
	})
	m.Add("dispose", func() {
		if !stopped {
			t.Error("dispose ran before the previous step finished")
		}
	})

	m.Run()
}

func TestListenIgnoresAfterContextCancel(t *testing.T) {
	m := NewManager(logger.NewNop())
	ran := false
	m.Add("step", func() { ran = true })

	ctx, cancel := context.WithCancel(context.Background())
	m.Listen(ctx)
	cancel()
	time.Sleep(20 * time.Millisecond)

	if ran {
		t.Error("shutdown ran without a signal")
	}
}
