package queue

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

type collectingAuditService struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	done    chan struct{}
	want    int
}

func (s *collectingAuditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ProcessesAllEntries(t *testing.T) {
	svc := &collectingAuditService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(2, svc, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 3; i++ {
		d.Record(domain.AuditEntry{Entity: "task", EntityID: i, Action: domain.AuditCreated, Actor: "ivan"})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("entries not processed in time")
	}
}

func TestDispatcher_SameActorOrdering(t *testing.T) {
	svc := &collectingAuditService{done: make(chan struct{}), want: 10}
	d := NewDispatcher(4, svc, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 10; i++ {
		d.Record(domain.AuditEntry{Entity: "task", EntityID: i, Action: domain.AuditUpdated, Actor: "ivan"})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("entries not processed in time")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, e := range svc.entries {
		if e.EntityID != int64(i+1) {
			t.Fatalf("per-actor order broken at %d: %+v", i, svc.entries)
		}
	}
}

func TestDispatcher_RecordAfterShutdownDoesNotBlock(t *testing.T) {
	svc := &collectingAuditService{done: make(chan struct{}), want: -1}
	d := NewDispatcher(1, svc, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	select {
	case <-d.stop:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not observe cancellation")
	}

	// Overfill a single shard's buffer; every call must return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+50; i++ {
			d.Record(domain.AuditEntry{Entity: "task", EntityID: int64(i), Action: domain.AuditCreated, Actor: "ivan"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked after shutdown")
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.New(io.Discard))

	first := d.shardIndex("ivan")
	for i := 0; i < 100; i++ {
		if d.shardIndex("ivan") != first {
			t.Fatal("same actor must always map to the same worker")
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
