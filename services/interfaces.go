package services

import (
	"context"

	"youth_policy_ai/models"
)

// Recommender 추천 서비스 인터페이스
type Recommender interface {
	// 프로필에 맞는 정책 최대 k건 추천
	Recommend(ctx context.Context, profile models.UserProfile, k int) (models.RecommendationResult, error)

	// 점수 계산 방식과 정책 수
	Mode() models.ScoringMode
	TotalPolicies() int

	// 추천 캐시 관리
	ClearCache() int
	CacheStats() CacheStats
}

// Summarizer 정책 요약 서비스 인터페이스
type Summarizer interface {
	// 사용자 맥락에 맞춘 정책 요약 생성
	Summarize(ctx context.Context, req models.SummaryRequest) (SummaryResult, error)

	// 요약 기능 사용 가능 여부
	Configured() bool

	// 요약 캐시 관리
	ClearCache() int
	CacheSize() int
}
