package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"youth_policy_ai/logger"
)

// ErrUnavailable 회로가 열려 있는 동안 반환
var ErrUnavailable = errors.New("llm: temporarily unavailable")

// BreakerSettings 서킷 브레이커 설정
type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32        // 연속 실패 횟수 도달 시 open
	OpenTimeout         time.Duration // open 유지 시간 후 half-open
}

// DefaultBreakerSettings 연속 5회 실패 시 열리고 1분 뒤 재시도
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:                "gemini",
		ConsecutiveFailures: 5,
		OpenTimeout:         time.Minute,
	}
}

// BreakerGenerator 서킷 브레이커로 감싼 Generator
type BreakerGenerator struct {
	next Generator
	cb   *gobreaker.CircuitBreaker[string]
}

// WithCircuitBreaker next 를 브레이커로 감싼다
func WithCircuitBreaker(next Generator, s BreakerSettings) *BreakerGenerator {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = DefaultBreakerSettings().ConsecutiveFailures
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = DefaultBreakerSettings().OpenTimeout
	}

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("LLM circuit breaker state transition", "name", name, "from", from.String(), "to", to.String())
		},
		// 호출자 취소는 프로바이더 장애가 아니다
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerGenerator{next: next, cb: cb}
}

// Generate 회로가 닫혀 있으면 내부 Generator 실행
func (b *BreakerGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := b.cb.Execute(func() (string, error) {
		return b.next.Generate(ctx, prompt)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return text, err
}

// State 브레이커 상태 이름
func (b *BreakerGenerator) State() string {
	return b.cb.State().String()
}

// Close 내부 Generator 종료
func (b *BreakerGenerator) Close() error {
	return b.next.Close()
}
