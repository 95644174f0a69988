package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"youth_policy_ai/config"
	"youth_policy_ai/logger"
)

// 기본 캐시 초기화 시각 (자정)
const (
	defaultHour   = 0
	defaultMinute = 0
)

// 초 단위를 time.Duration 으로 변환
func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// 시와 분이 유효한지 확인하고 아니면 기본값 사용
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("Invalid schedule hour, using default", "hour", hour, "default", defaultHour)
		hour = defaultHour
	}
	if minute < 0 || minute > 59 {
		logger.Warn("Invalid schedule minute, using default", "minute", minute, "default", defaultMinute)
		minute = defaultMinute
	}
	return hour, minute
}

// 다음 지정 시각 계산
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// TaskType 작업 종류
type TaskType int

const (
	TaskCacheReset TaskType = iota
)

// TaskStatus 작업 상태
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// CacheResetter 캐시 초기화 대상
type CacheResetter interface {
	ClearCache() int
}

// Scheduler 작업 스케줄러
type Scheduler struct {
	cfg       *config.Config
	resetters []CacheResetter
	tasks     map[TaskType]*TaskStatus
	mutex     sync.Mutex
	wg        sync.WaitGroup
}

// NewScheduler 스케줄러 생성
func NewScheduler(cfg *config.Config, resetters ...CacheResetter) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		resetters: resetters,
		tasks:     make(map[TaskType]*TaskStatus),
	}
}

// Start 작업을 초기화하고 ctx 가 끝날 때까지 주 루프를 돌린다
func Start(ctx context.Context, cfg *config.Config, resetters ...CacheResetter) *Scheduler {
	s := NewScheduler(cfg, resetters...)
	s.initTasks(time.Now())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()

	logger.Info("Scheduler started", "check_interval_sec", s.checkInterval().Seconds())
	return s
}

// Wait 주 루프와 실행 중인 작업이 끝날 때까지 대기
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Status 작업 상태 사본
func (s *Scheduler) Status(taskType TaskType) (TaskStatus, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	status, ok := s.tasks[taskType]
	if !ok {
		return TaskStatus{}, false
	}
	return *status, true
}

func (s *Scheduler) checkInterval() time.Duration {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 기본값
	}
	return secondsToDuration(checkInterval)
}

// 작업 초기화
func (s *Scheduler) initTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cfg.Debug.Enabled {
		// debug 모드: 설정한 초 간격으로 캐시 초기화
		freqSeconds := s.debugFrequency()
		interval := secondsToDuration(freqSeconds)

		s.tasks[TaskCacheReset] = &TaskStatus{
			LastRun:     now,
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("Cache reset (debug: every %ds)", freqSeconds),
		}
		logger.Info("Debug mode enabled", "cache_reset_freq_sec", freqSeconds)
	} else {
		// 일반 모드: 매일 지정 시각에 캐시 초기화
		hour, minute := validateHourMinute(s.cfg.Scheduler.CacheResetHour, s.cfg.Scheduler.CacheResetMinute)
		next := getNextTimePoint(now, hour, minute)

		s.tasks[TaskCacheReset] = &TaskStatus{
			LastRun:     next.AddDate(0, 0, -1),
			NextRun:     next,
			Description: fmt.Sprintf("Daily cache reset (%02d:%02d)", hour, minute),
		}
		logger.Info("Daily cache reset scheduled", "time", fmt.Sprintf("%02d:%02d", hour, minute))
	}

	logger.Info("Scheduled tasks initialized", "task_count", len(s.tasks))
}

func (s *Scheduler) debugFrequency() int {
	freqSeconds := s.cfg.Debug.CacheResetFreq
	if freqSeconds <= 0 {
		freqSeconds = 1800
	}
	return freqSeconds
}

// 주 루프
func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Scheduler stopped")
			return
		case now := <-ticker.C:
			s.checkTasks(now)
		}
	}
}

// 실행 시각이 된 작업 확인
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		if status.IsRunning || status.NextRun.IsZero() {
			continue
		}

		if !now.Before(status.NextRun) {
			status.IsRunning = true
			s.wg.Add(1)
			go func(taskType TaskType) {
				defer s.wg.Done()
				s.runTask(taskType, now)
			}(taskType)
		}
	}
}

// 작업 실행
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	log := logger.With("component", "scheduler", "task_type", int(taskType))

	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		// 다음 실행 시각 갱신
		switch taskType {
		case TaskCacheReset:
			if s.cfg.Debug.Enabled {
				status.NextRun = now.Add(secondsToDuration(s.debugFrequency()))
			} else {
				hour, minute := validateHourMinute(s.cfg.Scheduler.CacheResetHour, s.cfg.Scheduler.CacheResetMinute)
				status.NextRun = getNextTimePoint(now.Add(time.Minute), hour, minute)
			}
		}

		log.Info("Task finished", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskCacheReset:
		cleared := 0
		for _, r := range s.resetters {
			cleared += r.ClearCache()
		}
		log.Info("Caches reset", "entries_cleared", cleared)
	}
}
