package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"youth_policy_ai/logger"
	"youth_policy_ai/metrics"
	"youth_policy_ai/models"
	"youth_policy_ai/utils"
)

// Recoverer 핸들러 패닉을 잡아 CodeServerError 응답으로 바꾼다
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			logger.Error("Handler panic recovered",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", middleware.GetReqID(r.Context()),
				"panic", rvr)
			utils.WriteErrorResponse(w, models.CodeServerError, nil)
		}()

		next.ServeHTTP(w, r)
	})
}

// PrometheusMetrics 요청 수, 지연 시간, 동시 요청 수를 기록하는 미들웨어.
// 경로 대신 chi 라우트 패턴을 레이블로 사용해 카디널리티를 제한한다
func PrometheusMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(status), time.Since(start))
	})
}
