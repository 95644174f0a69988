package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_policy_ai/config"
)

type countingResetter struct {
	calls atomic.Int32
}

func (c *countingResetter) ClearCache() int {
	c.calls.Add(1)
	return 3
}

func TestGetNextTimePoint(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 6, 1, 11, 0, 0, 0, loc), getNextTimePoint(now, 11, 0))
	assert.Equal(t, time.Date(2025, 6, 2, 3, 0, 0, 0, loc), getNextTimePoint(now, 3, 0))
	assert.Equal(t, now, getNextTimePoint(now, 10, 30), "the current minute is still due")
}

func TestValidateHourMinute(t *testing.T) {
	h, m := validateHourMinute(4, 15)
	assert.Equal(t, 4, h)
	assert.Equal(t, 15, m)

	h, m = validateHourMinute(24, -1)
	assert.Equal(t, defaultHour, h)
	assert.Equal(t, defaultMinute, m)
}

func TestInitTasks_DailyMode(t *testing.T) {
	cfg := config.Default()
	cfg.Scheduler.CacheResetHour = 4
	s := NewScheduler(cfg)

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	s.initTasks(now)

	status, ok := s.Status(TaskCacheReset)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 2, 4, 0, 0, 0, time.Local), status.NextRun)
}

func TestRunTask_ResetsCachesAndReschedules(t *testing.T) {
	cfg := config.Default()
	cfg.Debug.Enabled = true
	cfg.Debug.CacheResetFreq = 60
	a, b := &countingResetter{}, &countingResetter{}
	s := NewScheduler(cfg, a, b)

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	s.initTasks(now)

	s.checkTasks(now.Add(30 * time.Second))
	s.Wait()
	assert.Equal(t, int32(0), a.calls.Load(), "not due yet")

	due := now.Add(time.Minute)
	s.checkTasks(due)
	s.Wait()

	assert.Equal(t, int32(1), a.calls.Load())
	assert.Equal(t, int32(1), b.calls.Load())

	status, _ := s.Status(TaskCacheReset)
	assert.False(t, status.IsRunning)
	assert.Equal(t, due, status.LastRun)
	assert.Equal(t, due.Add(time.Minute), status.NextRun)
}

func TestStart_StopsWithContext(t *testing.T) {
	cfg := config.Default()
	ctx, cancel := context.WithCancel(context.Background())

	s := Start(ctx, cfg, &countingResetter{})
	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
