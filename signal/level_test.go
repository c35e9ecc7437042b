// File: signal/level_test.go
// Author: momentics <momentics@gmail.com>

package signal_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/hioload-thpool/signal"
)

func TestNewLevelRejectsNonBinary(t *testing.T) {
	for _, v := range []int{-1, 2, 42} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewLevel(%d) did not panic", v)
				}
			}()
			signal.NewLevel(v)
		}()
	}
}

func TestLevelWaitDoesNotConsume(t *testing.T) {
	l := signal.NewLevel(0)
	l.Post()
	// Two sequential waiters must both pass: the flag stays high.
	l.Wait()
	l.Wait()
	if got := l.Value(); got != 1 {
		t.Fatalf("value after waits = %d, want 1", got)
	}
}

func TestLevelPostAllWakesEveryWaiter(t *testing.T) {
	l := signal.NewLevel(0)
	const waiters = 8
	var woke int32
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			l.Wait()
			atomic.AddInt32(&woke, 1)
		}()
	}
	// Give the waiters a chance to park before broadcasting.
	time.Sleep(10 * time.Millisecond)
	l.PostAll()
	wg.Wait()
	if woke != waiters {
		t.Fatalf("woke = %d, want %d", woke, waiters)
	}
}

func TestLevelSetZeroBlocksNewWaiters(t *testing.T) {
	l := signal.NewLevel(1)
	l.Set(0)
	released := make(chan struct{})
	go func() {
		l.Wait()
		close(released)
	}()
	select {
	case <-released:
		t.Fatal("waiter passed a lowered flag")
	case <-time.After(20 * time.Millisecond):
	}
	l.Post()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("waiter not released by Post")
	}
}
