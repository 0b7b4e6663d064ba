package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/servicecheck/internal/domain"
	"github.com/hamed0406/servicecheck/internal/health"
	"github.com/hamed0406/servicecheck/internal/probe"
	"github.com/hamed0406/servicecheck/internal/repo/memory"
)

type stubTCP struct{ ok bool }

func (s stubTCP) Check(ctx context.Context, host string, port int, timeout time.Duration) probe.Outcome {
	return probe.Outcome{OK: s.ok, Message: "stub"}
}

type stubHTTPS struct{}

func (stubHTTPS) Check(ctx context.Context, host, path string, timeout time.Duration) probe.Outcome {
	return probe.Outcome{OK: true, Message: "stub"}
}

func testEvaluator(tcpOK bool) *health.Evaluator {
	return &health.Evaluator{
		Logger:       zap.NewNop(),
		TCP:          stubTCP{ok: tcpOK},
		HTTPS:        stubHTTPS{},
		TCPTimeout:   time.Second,
		HTTPSTimeout: time.Second,
	}
}

func targets(t *testing.T) []domain.Target {
	t.Helper()
	a, err := domain.NewTarget("a", "a.example.com", 443, "")
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	b, err := domain.NewTarget("b", "b.example.com", 443, "")
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	return []domain.Target{a, b}
}

func TestRechecker_SinglePassStoresResults(t *testing.T) {
	store := memory.New()
	rc := New(zap.NewNop(), testEvaluator(true), targets(t), store, 0)

	rc.Run(context.Background())

	got, err := store.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 stored results, got %d", len(got))
	}
	for _, r := range got {
		if !r.IsHealthy() {
			t.Fatalf("expected healthy snapshot, got %+v", r)
		}
	}
}

func TestRechecker_StopsOnCancel(t *testing.T) {
	store := memory.New()
	rc := New(zap.NewNop(), testEvaluator(false), targets(t), store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rc.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("rechecker did not stop on cancel")
	}

	got, _ := store.Latest(context.Background())
	if len(got) != 2 {
		t.Fatalf("want snapshots for both targets, got %d", len(got))
	}
}
