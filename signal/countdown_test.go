// File: signal/countdown_test.go
// Author: momentics <momentics@gmail.com>

package signal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-thpool/signal"
)

func TestNewCountdownRejectsNegative(t *testing.T) {
	require.Panics(t, func() { signal.NewCountdown(-1) })
}

func TestCountdownZeroNeverBlocks(t *testing.T) {
	c := signal.NewCountdown(0)
	done := make(chan struct{})
	go func() {
		c.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait on zero-armed countdown blocked")
	}
}

func TestCountdownReleasesOnlyAtZero(t *testing.T) {
	const n = 5
	c := signal.NewCountdown(n)
	released := make(chan struct{})
	go func() {
		c.Wait()
		close(released)
	}()
	for i := 0; i < n-1; i++ {
		c.Post()
		select {
		case <-released:
			t.Fatalf("waiter released after %d of %d posts", i+1, n)
		case <-time.After(5 * time.Millisecond):
		}
	}
	c.Post()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("waiter not released after final post")
	}
	require.Equal(t, 0, c.Value())
}

func TestCountdownOverpostPanics(t *testing.T) {
	c := signal.NewCountdown(1)
	c.Post()
	require.Panics(t, func() { c.Post() })
	require.Panics(t, func() { c.PostAll() })
}

func TestCountdownPostAllBroadcasts(t *testing.T) {
	c := signal.NewCountdown(1)
	const waiters = 4
	released := make(chan struct{}, waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			c.Wait()
			released <- struct{}{}
		}()
	}
	time.Sleep(10 * time.Millisecond)
	c.PostAll()
	for i := 0; i < waiters; i++ {
		select {
		case <-released:
		case <-time.After(time.Second):
			t.Fatalf("waiter %d not released by PostAll", i)
		}
	}
}
