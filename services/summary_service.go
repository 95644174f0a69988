package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"youth_policy_ai/cache"
	"youth_policy_ai/llm"
	"youth_policy_ai/logger"
	"youth_policy_ai/metrics"
	"youth_policy_ai/models"
	"youth_policy_ai/utils"
)

var (
	// ErrPolicyNotFound 요청한 정책이 코퍼스에 없음
	ErrPolicyNotFound = errors.New("policy not found")
	// ErrSummarizerUnavailable 요약 LLM 미설정 또는 일시 차단
	ErrSummarizerUnavailable = errors.New("summarizer unavailable")
)

// PolicyLookup 정책 단건 조회
type PolicyLookup interface {
	Get(id string) (*models.PolicyRecord, bool)
}

// SummaryResult 요약 결과
type SummaryResult struct {
	PolicyID    string
	PolicyTitle string
	Summary     string
	Cached      bool
}

// SummaryService Gemini 기반 정책 요약 서비스
type SummaryService struct {
	policies  PolicyLookup
	generator llm.Generator // nil 이면 요약 기능 비활성
	cache     *cache.FIFO[string]
	timeout   time.Duration
}

// NewSummaryService generator 가 nil 이면 Summarize 는 ErrSummarizerUnavailable 을 반환한다
func NewSummaryService(policies PolicyLookup, generator llm.Generator, maxCacheSize int, timeout time.Duration) *SummaryService {
	c := cache.NewFIFO[string](maxCacheSize)
	c.OnEvict(func(evicted int) {
		metrics.RecordCacheEviction(metrics.CacheSummary, evicted)
	})
	c.OnLookup(func(hit bool) {
		metrics.RecordCacheLookup(metrics.CacheSummary, hit)
	})
	return &SummaryService{
		policies:  policies,
		generator: generator,
		cache:     c,
		timeout:   timeout,
	}
}

// Configured 요약 기능 사용 가능 여부
func (s *SummaryService) Configured() bool {
	return s.generator != nil
}

// Summarize 캐시를 먼저 확인하고 없으면 LLM 으로 요약을 생성한다
func (s *SummaryService) Summarize(ctx context.Context, req models.SummaryRequest) (SummaryResult, error) {
	start := time.Now()
	if s.generator == nil {
		metrics.RecordSummary(metrics.OutcomeError, time.Since(start))
		return SummaryResult{}, ErrSummarizerUnavailable
	}

	policy, ok := s.policies.Get(strings.TrimSpace(req.PolicyID))
	if !ok {
		metrics.RecordSummary(metrics.OutcomeError, time.Since(start))
		return SummaryResult{}, fmt.Errorf("%w: %s", ErrPolicyNotFound, req.PolicyID)
	}

	result := SummaryResult{PolicyID: policy.ID, PolicyTitle: policy.Title}
	key := summaryCacheKey(policy.ID, req)

	if summary, hit := s.cache.Get(key); hit {
		metrics.RecordSummary(metrics.OutcomeCacheHit, time.Since(start))
		result.Summary = summary
		result.Cached = true
		return result, nil
	}

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.generator.Generate(genCtx, buildSummaryPrompt(policy, req))
	if err != nil {
		metrics.RecordSummary(metrics.OutcomeError, time.Since(start))
		logger.Error("Summary generation failed", "policy_id", policy.ID, "error", err)
		if errors.Is(err, llm.ErrUnavailable) {
			return SummaryResult{}, fmt.Errorf("%w: %w", ErrSummarizerUnavailable, err)
		}
		return SummaryResult{}, fmt.Errorf("generate summary: %w", err)
	}

	summary := utils.CleanLLMText(raw)
	if summary == "" {
		metrics.RecordSummary(metrics.OutcomeError, time.Since(start))
		return SummaryResult{}, fmt.Errorf("generate summary: empty response")
	}

	stored, _ := s.cache.PutIfAbsent(key, summary)
	metrics.SetCacheEntries(metrics.CacheSummary, s.cache.Len())
	metrics.RecordSummary(metrics.OutcomeComputed, time.Since(start))

	logger.Info("Summary generated", "policy_id", policy.ID, "duration", time.Since(start).String())
	result.Summary = stored
	return result, nil
}

// ClearCache 요약 캐시 비우기
func (s *SummaryService) ClearCache() int {
	n := s.cache.Clear()
	metrics.SetCacheEntries(metrics.CacheSummary, 0)
	return n
}

// CacheSize 요약 캐시 항목 수
func (s *SummaryService) CacheSize() int {
	return s.cache.Len()
}

// summaryCacheKey 정책과 사용자 맥락(나이, 전공, 관심사)으로 캐시 키 생성
func summaryCacheKey(policyID string, req models.SummaryRequest) string {
	age := ""
	if req.UserAge != nil {
		age = strconv.Itoa(*req.UserAge)
	}
	parts := []string{
		policyID,
		age,
		strings.TrimSpace(req.UserMajor),
		strings.Join(cleanInterests(req.UserInterests), "_"),
	}
	return utils.CalculateMD5(strings.Join(parts, "\x1f"))
}
