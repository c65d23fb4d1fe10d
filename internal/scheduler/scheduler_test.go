package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeSnapshotter struct {
	calls atomic.Int32
	err   error
}

func (f *fakeSnapshotter) Snapshot() (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return "/tmp/backup", nil
}

func TestScheduler_Tick_Snapshots(t *testing.T) {
	snap := &fakeSnapshotter{}
	s := New(snap, 30*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, snap.calls.Load(), int32(3))
}

func TestScheduler_Tick_KeepsRunningOnError(t *testing.T) {
	snap := &fakeSnapshotter{err: errors.New("disk full")}
	s := New(snap, 30*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, snap.calls.Load(), int32(2))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	s := New(&fakeSnapshotter{}, time.Second, newTestLogger(t)) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
