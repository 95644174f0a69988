// Package metrics /metrics 로 노출하는 Prometheus 지표
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 캐시 레이블 값
const (
	CacheRecommendation = "recommendation"
	CacheSummary        = "summary"
)

// 추천 결과 레이블 값
const (
	OutcomeComputed = "computed"
	OutcomeCacheHit = "cache_hit"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
)

var (
	// API 엔드포인트 지표
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youth_policy_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "youth_policy_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "youth_policy_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// 추천 지표
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youth_policy_recommendations_total",
			Help: "Recommendation requests by scoring mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "youth_policy_recommendation_duration_seconds",
			Help:    "Time spent answering a recommendation request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "youth_policy_recommendation_items",
			Help:    "Number of policies returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	// 캐시 지표
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youth_policy_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youth_policy_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youth_policy_cache_evictions_total",
			Help: "Total number of entries dropped by FIFO half-eviction",
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "youth_policy_cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache"},
	)

	// 요약 지표
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youth_policy_summaries_total",
			Help: "Policy summary requests by outcome",
		},
		[]string{"outcome"},
	)

	SummaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "youth_policy_summary_duration_seconds",
			Help:    "Time spent generating a policy summary with the LLM",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// 코퍼스 지표
	CorpusPolicies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "youth_policy_corpus_policies",
			Help: "Number of policies loaded into the corpus",
		},
	)

	CorpusEmbeddingMode = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "youth_policy_corpus_embedding_mode",
			Help: "1 when the corpus scores by embedding similarity, 0 in keyword mode",
		},
	)
)

// RecordAPIRequest API 요청 기록
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest 처리 중인 요청 수 증감
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation 추천 요청 한 건 기록
func RecordRecommendation(mode, outcome string, items int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if outcome != OutcomeError {
		RecommendationItems.Observe(float64(items))
	}
}

// RecordCacheLookup 캐시 적중/실패 집계
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordCacheEviction 캐시에서 제거된 항목 수 집계
func RecordCacheEviction(cache string, evicted int) {
	CacheEvictions.WithLabelValues(cache).Add(float64(evicted))
}

// SetCacheEntries 캐시 항목 수 게이지 갱신
func SetCacheEntries(cache string, entries int) {
	CacheEntries.WithLabelValues(cache).Set(float64(entries))
}

// RecordSummary 요약 요청 한 건 기록
func RecordSummary(outcome string, duration time.Duration) {
	SummariesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeComputed {
		SummaryDuration.Observe(duration.Seconds())
	}
}

// SetCorpus 로드된 코퍼스 크기와 점수 계산 방식 게시
func SetCorpus(policies int, embeddingMode bool) {
	CorpusPolicies.Set(float64(policies))
	if embeddingMode {
		CorpusEmbeddingMode.Set(1)
	} else {
		CorpusEmbeddingMode.Set(0)
	}
}
