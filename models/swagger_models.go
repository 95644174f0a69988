package models

// APIResponse 공통 API 응답
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// RecommendationResponse 추천 결과 응답
type RecommendationResponse struct {
	Success              bool            `json:"success" example:"true"`
	UserID               string          `json:"user_id" example:"user_001"`
	RequestID            string          `json:"request_id" example:"0b5d6c1e-8a4f-4f51-9d0e-3c2a9a7f1b22"`
	Timestamp            string          `json:"timestamp" example:"2025-06-01T09:00:00+09:00"`
	TotalRecommendations int             `json:"total_recommendations" example:"5"`
	Data                 []PolicyPayload `json:"data"`
	Cached               bool            `json:"cached" example:"false"`
}

// SummaryRequest 정책 요약 요청
type SummaryRequest struct {
	PolicyID      string   `json:"policy_id" validate:"required,max=64" example:"20250703005400200002"`
	UserAge       *int     `json:"user_age,omitempty" validate:"omitempty,gte=15,lte=39" example:"24"`
	UserMajor     string   `json:"user_major,omitempty" validate:"max=100" example:"컴퓨터공학"`
	UserInterests []string `json:"user_interests,omitempty" validate:"max=20,dive,max=50" example:"취업,창업"`
}

// SummaryResponse 정책 요약 응답
type SummaryResponse struct {
	Success     bool   `json:"success" example:"true"`
	PolicyID    string `json:"policy_id" example:"20250703005400200002"`
	PolicyTitle string `json:"policy_title" example:"청년 취업 지원 사업"`
	Summary     string `json:"summary"`
	Timestamp   string `json:"timestamp" example:"2025-06-01T09:00:00+09:00"`
	Cached      bool   `json:"cached" example:"false"`
}

// HealthResponse 헬스 체크 응답
type HealthResponse struct {
	Status        string `json:"status" example:"healthy"`
	ModelLoaded   bool   `json:"model_loaded" example:"true"`
	Mode          string `json:"mode" example:"embedding"`
	TotalPolicies int    `json:"total_policies" example:"1200"`
	Timestamp     string `json:"timestamp"`
}

// StatsResponse 서버 통계 응답
type StatsResponse struct {
	ModelLoaded             bool   `json:"model_loaded"`
	Mode                    string `json:"mode"`
	SummarizerConfigured    bool   `json:"gemini_configured"`
	TotalPolicies           int    `json:"total_policies"`
	RecommendationCacheSize int    `json:"recommendation_cache_size"`
	SummaryCacheSize        int    `json:"summary_cache_size"`
	MaxCacheSize            int    `json:"max_cache_size"`
	CacheHits               int64  `json:"cache_hits"`
	CacheMisses             int64  `json:"cache_misses"`
	CacheEvictions          int64  `json:"cache_evictions"`
	Timestamp               string `json:"timestamp"`
}

// CacheClearResponse 캐시 초기화 응답
type CacheClearResponse struct {
	RecommendationsCleared int    `json:"recommendations_cleared"`
	SummariesCleared       int    `json:"summaries_cleared"`
	Timestamp              string `json:"timestamp"`
}
