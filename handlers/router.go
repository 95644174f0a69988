package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"youth_policy_ai/config"
	_ "youth_policy_ai/docs" // swagger 문서 등록
	"youth_policy_ai/models"
	"youth_policy_ai/services"
	"youth_policy_ai/utils"
)

// Version 서비스 버전
const Version = "2.0.0"

// Deps 핸들러가 사용하는 설정과 서비스
type Deps struct {
	Config      *config.Config
	Recommender services.Recommender
	Summarizer  services.Summarizer
	Now         func() time.Time // 테스트에서 고정 시각 주입
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// NewRouter 미들웨어와 전체 라우트를 구성한다
func NewRouter(deps *Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(PrometheusMetrics)

	RegisterRoutes(r, deps)
	return r
}

// RegisterRoutes 라우트 등록
func RegisterRoutes(r chi.Router, deps *Deps) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		RootHandler(w, r, deps)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		HealthHandler(w, r, deps)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/recommendations", func(w http.ResponseWriter, r *http.Request) {
			RecommendHandler(w, r, deps)
		})

		r.With(summaryRateLimiter(deps.Config)).Post("/summary", func(w http.ResponseWriter, r *http.Request) {
			SummaryHandler(w, r, deps)
		})

		r.Delete("/cache", func(w http.ResponseWriter, r *http.Request) {
			ClearCacheHandler(w, r, deps)
		})
		r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
			StatsHandler(w, r, deps)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}

// summaryRateLimiter LLM 호출 비용 때문에 요약 API는 IP당 분당 요청 수를 제한한다
func summaryRateLimiter(cfg *config.Config) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.Summary.RateLimitPerMin,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteErrorResponse(w, models.CodeRateLimited, map[string]interface{}{
				"limit_per_minute": cfg.Summary.RateLimitPerMin,
			})
		}),
	)
}
