package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_FlushesPendingSave(t *testing.T) {
	flusher := mocks.NewMockDocumentFlusher(t)
	log := newTestLogger(t)

	s := New(flusher, 50*time.Millisecond, log)

	flusher.EXPECT().Flush(mock.Anything).Return(true, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(flusher.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	flusher := mocks.NewMockDocumentFlusher(t)
	log := newTestLogger(t)

	s := New(flusher, 50*time.Millisecond, log)

	flusher.EXPECT().Flush(mock.Anything).Return(false, errors.New("backend unavailable"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(flusher.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	flusher := mocks.NewMockDocumentFlusher(t)
	log := newTestLogger(t)

	s := New(flusher, time.Second, log) // interval longer than test

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

func TestScheduler_MultipleTicks(t *testing.T) {
	flusher := mocks.NewMockDocumentFlusher(t)
	log := newTestLogger(t)

	s := New(flusher, 30*time.Millisecond, log)

	flusher.EXPECT().Flush(mock.Anything).Return(false, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(flusher.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
