package services

import (
	"context"
	"time"

	"youth_policy_ai/cache"
	"youth_policy_ai/metrics"
	"youth_policy_ai/models"
	"youth_policy_ai/recommend"
)

// CacheStats 추천 캐시 통계
type CacheStats = cache.Stats

// RecommendationService 추천 엔진에 지표와 로그를 덧붙인 서비스
type RecommendationService struct {
	engine *recommend.Engine
}

// NewRecommendationService 엔진을 감싸고 캐시 조회와 퇴출을 지표로 연결한다
func NewRecommendationService(engine *recommend.Engine) *RecommendationService {
	engine.Cache().OnLookup(func(hit bool) {
		metrics.RecordCacheLookup(metrics.CacheRecommendation, hit)
	})
	engine.Cache().OnEvict(func(evicted int) {
		metrics.RecordCacheEviction(metrics.CacheRecommendation, evicted)
	})
	metrics.SetCorpus(engine.CorpusSize(), engine.Mode() == models.ModeEmbedding)
	return &RecommendationService{engine: engine}
}

// Recommend 추천 실행
func (s *RecommendationService) Recommend(ctx context.Context, profile models.UserProfile, k int) (models.RecommendationResult, error) {
	start := time.Now()
	mode := string(s.engine.Mode())

	result, err := s.engine.Recommend(ctx, profile, k)
	if err != nil {
		metrics.RecordRecommendation(mode, metrics.OutcomeError, 0, time.Since(start))
		return result, err
	}

	outcome := metrics.OutcomeComputed
	switch {
	case result.Cached:
		outcome = metrics.OutcomeCacheHit
	case result.TotalReturned == 0:
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(mode, outcome, result.TotalReturned, time.Since(start))
	metrics.SetCacheEntries(metrics.CacheRecommendation, s.engine.Cache().Len())

	return result, nil
}

// Mode 점수 계산 방식
func (s *RecommendationService) Mode() models.ScoringMode {
	return s.engine.Mode()
}

// TotalPolicies 로드된 정책 수
func (s *RecommendationService) TotalPolicies() int {
	return s.engine.CorpusSize()
}

// ClearCache 추천 캐시 비우기
func (s *RecommendationService) ClearCache() int {
	n := s.engine.ClearCache()
	metrics.SetCacheEntries(metrics.CacheRecommendation, 0)
	return n
}

// CacheStats 추천 캐시 통계
func (s *RecommendationService) CacheStats() CacheStats {
	return s.engine.Cache().Stats()
}
