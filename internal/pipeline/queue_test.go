package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/kidlingo/internal/store"
)

func TestDrainPendingSkipsFailed(t *testing.T) {
	h := newHarness(t, strings.Repeat("a", 10))
	ctx := context.Background()

	failed := h.addMedia(t, true)
	if err := h.store.MediaRepo().MarkError(ctx, failed.ID, "Error: earlier", "earlier"); err != nil {
		t.Fatal(err)
	}
	pending := h.addMedia(t, true)

	n, err := h.proc.DrainPending(ctx)
	if err != nil {
		t.Fatalf("DrainPending: %v", err)
	}
	if n != 0 {
		t.Errorf("processed = %d, want 0", n)
	}
	if h.tr.calls != 1 {
		t.Errorf("transcriber calls = %d, want 1", h.tr.calls)
	}
	if got := h.reload(t, pending.ID); got.Status != store.StatusError {
		t.Errorf("pending media status = %s, want error", got.Status)
	}
	if got := h.reload(t, failed.ID); got.ProcessingMessage != "Error: earlier" {
		t.Errorf("failed media was retried: %q", got.ProcessingMessage)
	}
}

func TestQueueRunDrainsOnNotify(t *testing.T) {
	h := newHarness(t, strings.Repeat("a", 10))
	notify := make(chan int, 1)
	drained := make(chan struct{}, 4)

	q := NewQueue(h.proc, NewSweeper(h.store.MediaRepo(), nil), notify, QueueConfig{})
	q.AfterDrain = func() { drained <- struct{}{} }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- q.Run(ctx) }()

	wait := func() {
		t.Helper()
		select {
		case <-drained:
		case <-time.After(5 * time.Second):
			t.Fatal("queue did not drain")
		}
	}

	wait() // initial pass over an empty store

	m := h.addMedia(t, true)
	notify <- m.ID
	wait()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}

	if got := h.reload(t, m.ID); got.Status != store.StatusError {
		t.Errorf("status = %s, want error after short transcript", got.Status)
	}
}
