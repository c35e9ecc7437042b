// File: internal/jobqueue/jobqueue_test.go
// Author: momentics <momentics@gmail.com>

package jobqueue

import (
	"testing"
)

func TestPushPullFIFO(t *testing.T) {
	q := New()
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		q.Push(Job{Fn: func() { order = append(order, i) }})
	}
	if q.Len() != 10 {
		t.Fatalf("Len = %d, want 10", q.Len())
	}
	for i := 0; i < 10; i++ {
		j, ok := q.Pull()
		if !ok {
			t.Fatalf("Pull %d: queue empty early", i)
		}
		j.Fn()
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestPullEmptyReturnsFalse(t *testing.T) {
	q := New()
	if _, ok := q.Pull(); ok {
		t.Fatal("Pull on empty queue returned ok")
	}
}

func TestFlagFollowsOccupancy(t *testing.T) {
	q := New()
	if q.HasJobs().Value() != 0 {
		t.Fatal("fresh queue flag high")
	}
	q.Push(Job{Fn: func() {}})
	q.Push(Job{Fn: func() {}})
	if q.HasJobs().Value() != 1 {
		t.Fatal("flag low after push")
	}
	q.Pull()
	// One job remains: pull re-asserts rather than lowering.
	if q.HasJobs().Value() != 1 {
		t.Fatal("flag lowered while jobs remain")
	}
	q.Pull()
	if q.HasJobs().Value() != 0 {
		t.Fatal("flag high after emptying dequeue")
	}
}

func TestClearDiscardsAndResets(t *testing.T) {
	q := New()
	for i := 0; i < 5; i++ {
		q.Push(Job{Fn: func() {}})
	}
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("Len after Clear = %d", q.Len())
	}
	if q.HasJobs().Value() != 0 {
		t.Fatal("flag high after Clear")
	}
}
