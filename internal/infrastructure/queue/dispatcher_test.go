package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/glowmart/shop-api/internal/core/ports"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []ports.EmailJob
	done chan struct{}
	want int
}

func (s *recordingSender) Send(_ context.Context, job ports.EmailJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, job)
	if len(s.sent) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_SameRecipientKeepsOrder(t *testing.T) {
	sender := &recordingSender{done: make(chan struct{}), want: 3}
	d := NewDispatcher(4, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.EmailJob{Kind: ports.EmailConfirmation, To: "alice@example.com", Code: "111111"})
	d.Enqueue(ports.EmailJob{Kind: ports.EmailConfirmation, To: "alice@example.com", Code: "222222"})
	d.Enqueue(ports.EmailJob{Kind: ports.EmailPasswordReset, To: "alice@example.com", Link: "https://x/reset"})

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("jobs not delivered in time")
	}

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if sender.sent[0].Code != "111111" || sender.sent[1].Code != "222222" || sender.sent[2].Kind != ports.EmailPasswordReset {
		t.Fatalf("same-recipient jobs delivered out of order: %+v", sender.sent)
	}
}

func TestDispatcher_ShardIndexIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingSender{done: make(chan struct{}), want: 0}, zerolog.Nop())

	first := d.shardIndex("alice@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice@example.com"); got != first {
			t.Fatalf("shard index must be stable, got %d then %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestNewDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingSender{done: make(chan struct{}), want: 0}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
