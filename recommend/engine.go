package recommend

import (
	"context"
	"fmt"

	"youth_policy_ai/cache"
	"youth_policy_ai/embedding"
	"youth_policy_ai/logger"
	"youth_policy_ai/models"
)

// Options 엔진 설정
type Options struct {
	// 응답 캐시 최대 항목 수 (기본 cache.DefaultMaxSize)
	MaxCacheSize int
	// 표본 추출 시드. 0 이면 시간 기반, Random 지정 시 무시
	Seed int64
	// 표본 추출 난수원 직접 지정
	Random RandomSource
}

// Engine 고정된 코퍼스에 대한 추천 엔진
type Engine struct {
	corpus   Corpus
	scorer   Scorer
	selector *Selector
	cache    *cache.FIFO[models.RecommendationResult]
}

// NewEngine 코퍼스 모드에 맞는 scorer, selector, 응답 캐시를 구성한다
func NewEngine(corpus Corpus, embedder embedding.Embedder, opts Options) (*Engine, error) {
	if corpus == nil {
		return nil, ErrCorpusUnavailable
	}
	scorer, err := NewScorer(corpus, embedder)
	if err != nil {
		return nil, err
	}

	selector := NewSeededSelector(opts.Seed)
	if opts.Random != nil {
		selector = NewSelector(opts.Random)
	}

	return &Engine{
		corpus:   corpus,
		scorer:   scorer,
		selector: selector,
		cache:    cache.NewFIFO[models.RecommendationResult](opts.MaxCacheSize),
	}, nil
}

// Mode 생성 시 정해진 점수 계산 방식
func (e *Engine) Mode() models.ScoringMode {
	return e.scorer.Mode()
}

// CorpusSize 로드된 정책 수
func (e *Engine) CorpusSize() int {
	return e.corpus.Size()
}

// Cache 통계와 관리 작업용 응답 캐시
func (e *Engine) Cache() *cache.FIFO[models.RecommendationResult] {
	return e.cache
}

// ClearCache 응답 캐시를 비우고 삭제된 항목 수 반환
func (e *Engine) ClearCache() int {
	return e.cache.Clear()
}

// Recommend 프로필에 맞는 정책 최대 k 건. k <= 0 이나 자격 정책이 없으면 빈 성공 결과다.
// 정규화 결과와 k 가 같은 요청은 다시 뽑지 않고 캐시 결과를 Cached 로 반환한다
func (e *Engine) Recommend(ctx context.Context, profile models.UserProfile, k int) (models.RecommendationResult, error) {
	if e.corpus.Size() == 0 {
		return models.RecommendationResult{}, ErrCorpusUnavailable
	}
	if profile.Age < models.MinUserAge || profile.Age > models.MaxUserAge {
		return models.RecommendationResult{}, fmt.Errorf("%w: age %d outside %d-%d",
			ErrInvalidProfile, profile.Age, models.MinUserAge, models.MaxUserAge)
	}

	profile = profile.Normalize()
	key, err := Fingerprint(profile, k)
	if err != nil {
		return models.RecommendationResult{}, err
	}

	if cached, ok := e.cache.Get(key); ok {
		cached.Cached = true
		logger.Debug("Recommendation cache hit", "fingerprint", key, "user_id", profile.UserID)
		return cached, nil
	}

	result, err := e.compute(ctx, profile, k)
	if err != nil {
		return models.RecommendationResult{}, err
	}

	// 동시에 같은 요청이 먼저 저장했을 수 있다. 두 호출 모두 저장된 값을 반환
	stored, existed := e.cache.PutIfAbsent(key, result)
	if existed {
		stored.Cached = true
	}
	return stored, nil
}

func (e *Engine) compute(ctx context.Context, profile models.UserProfile, k int) (models.RecommendationResult, error) {
	result := models.RecommendationResult{
		Success: true,
		Items:   []models.PolicyPayload{},
		Mode:    e.scorer.Mode(),
	}
	if k <= 0 {
		return result, nil
	}

	eligible := FilterEligible(e.corpus.All(), profile)
	if len(eligible) == 0 {
		logger.Info("No eligible policies for profile", "user_id", profile.UserID, "age", profile.Age, "location", profile.Location)
		return result, nil
	}

	scored, err := e.scorer.Score(ctx, profile, eligible)
	if err != nil {
		return models.RecommendationResult{}, err
	}

	chosen := e.selector.Select(scored, k)
	for _, c := range chosen {
		result.Items = append(result.Items, models.NewPolicyPayload(c.Policy, c.Score))
	}
	result.TotalReturned = len(result.Items)

	logger.Debug("Recommendation computed",
		"user_id", profile.UserID,
		"eligible", len(eligible),
		"returned", result.TotalReturned,
		"mode", result.Mode)
	return result, nil
}
