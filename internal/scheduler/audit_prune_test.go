package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (q *fakeQueue) EnqueueAuditPrune(retentionDays int) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls = append(q.calls, retentionDays)
	if q.err != nil {
		return "", q.err
	}
	return "task-1", nil
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 3 * * *"))
	assert.NoError(t, ValidateCronSchedule("*/5 * * * *"))
	assert.Error(t, ValidateCronSchedule("every day"))
	assert.Error(t, ValidateCronSchedule("0 0 3 * * *"))
}

func TestAuditPruneScheduler_StartStop(t *testing.T) {
	s := NewAuditPruneScheduler(&fakeQueue{}, "0 3 * * *", 30)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.NextRun()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.True(t, next.After(time.Now()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
}

func TestAuditPruneScheduler_StopsWithContext(t *testing.T) {
	s := NewAuditPruneScheduler(&fakeQueue{}, "0 3 * * *", 30)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestAuditPruneScheduler_EmptyScheduleDisables(t *testing.T) {
	s := NewAuditPruneScheduler(&fakeQueue{}, "", 30)

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestAuditPruneScheduler_InvalidSchedule(t *testing.T) {
	s := NewAuditPruneScheduler(&fakeQueue{}, "not a schedule", 30)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule")
	assert.False(t, s.IsRunning())
}

func TestAuditPruneScheduler_RunNow(t *testing.T) {
	t.Run("enqueues with the configured retention", func(t *testing.T) {
		queue := &fakeQueue{}
		s := NewAuditPruneScheduler(queue, "0 3 * * *", 14)

		id, err := s.RunNow()

		require.NoError(t, err)
		assert.Equal(t, "task-1", id)
		assert.Equal(t, []int{14}, queue.calls)
	})

	t.Run("propagates queue errors", func(t *testing.T) {
		queue := &fakeQueue{err: errors.New("queue closed")}
		s := NewAuditPruneScheduler(queue, "0 3 * * *", 14)

		_, err := s.RunNow()
		assert.EqualError(t, err, "queue closed")
	})
}
