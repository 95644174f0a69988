package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"youth_policy_ai/logger"
	"youth_policy_ai/models"
	"youth_policy_ai/recommend"
	"youth_policy_ai/services"
	"youth_policy_ai/utils"
	"youth_policy_ai/validation"
)

// maxBodyBytes 요청 본문 최대 크기
const maxBodyBytes = 64 << 10

// RootHandler godoc
// @Summary 서비스 정보
// @Description 서비스 이름과 문서 위치를 반환
// @Tags 기본
// @Produce json
// @Success 200 {object} models.APIResponse "성공"
// @Router / [get]
func RootHandler(w http.ResponseWriter, r *http.Request, deps *Deps) {
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"service": "청년정책 AI 추천 서비스",
		"version": Version,
		"docs":    "/swagger/index.html",
		"mode":    deps.Recommender.Mode(),
	})
}

// HealthHandler godoc
// @Summary 헬스 체크
// @Description 정책 데이터 로딩 상태와 점수 계산 방식을 반환
// @Tags 기본
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse} "성공"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request, deps *Deps) {
	total := deps.Recommender.TotalPolicies()
	status := "healthy"
	if total == 0 {
		status = "degraded"
	}
	utils.WriteSuccessResponse(w, models.HealthResponse{
		Status:        status,
		ModelLoaded:   total > 0,
		Mode:          string(deps.Recommender.Mode()),
		TotalPolicies: total,
		Timestamp:     deps.now().Format(time.RFC3339),
	})
}

// RecommendHandler godoc
// @Summary 맞춤 정책 추천
// @Description 사용자 프로필(나이, 전공, 관심사, 지역)로 자격 조건을 만족하는 정책을 추천. 같은 프로필과 top_k 요청은 캐시된 결과를 반환
// @Tags 추천
// @Accept json
// @Produce json
// @Param top_k query int false "추천 개수 (1-20, 기본 5)"
// @Param profile body models.UserProfile true "사용자 프로필"
// @Success 200 {object} models.APIResponse{data=models.RecommendationResponse} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 503 {object} models.APIResponse "정책 데이터 미로딩"
// @Failure 500 {object} models.APIResponse "서버 오류"
// @Router /api/recommendations [post]
func RecommendHandler(w http.ResponseWriter, r *http.Request, deps *Deps) {
	topK, ok := parseTopK(w, r, deps)
	if !ok {
		return
	}

	var profile models.UserProfile
	if !decodeAndValidate(w, r, &profile) {
		return
	}

	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	result, err := deps.Recommender.Recommend(r.Context(), profile, topK)
	if err != nil {
		logger.Error("Recommendation failed", "request_id", requestID, "user_id", profile.UserID, "error", err)
		switch {
		case errors.Is(err, recommend.ErrInvalidProfile):
			utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), nil)
		case errors.Is(err, recommend.ErrCorpusUnavailable):
			utils.WriteErrorResponse(w, models.CodeCorpusUnavailable, nil)
		default:
			utils.WriteErrorResponse(w, models.CodeRecommendGenError, map[string]interface{}{
				"request_id": requestID,
			})
		}
		return
	}

	logger.Info("Recommendation served",
		"request_id", requestID,
		"user_id", profile.UserID,
		"top_k", topK,
		"returned", result.TotalReturned,
		"cached", result.Cached)

	utils.WriteSuccessResponse(w, models.RecommendationResponse{
		Success:              result.Success,
		UserID:               profile.UserID,
		RequestID:            requestID,
		Timestamp:            deps.now().Format(time.RFC3339),
		TotalRecommendations: result.TotalReturned,
		Data:                 result.Items,
		Cached:               result.Cached,
	})
}

// SummaryHandler godoc
// @Summary 정책 AI 요약
// @Description 사용자 정보에 맞춘 2-3문장 정책 요약을 Gemini로 생성. IP당 분당 요청 수 제한
// @Tags AI 요약
// @Accept json
// @Produce json
// @Param request body models.SummaryRequest true "요약 요청"
// @Success 200 {object} models.APIResponse{data=models.SummaryResponse} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 404 {object} models.APIResponse "정책 없음"
// @Failure 429 {object} models.APIResponse "요청 한도 초과"
// @Failure 503 {object} models.APIResponse "요약 기능 미설정"
// @Router /api/summary [post]
func SummaryHandler(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if !deps.Summarizer.Configured() {
		utils.WriteErrorResponse(w, models.CodeSummarizerUnavailable, nil)
		return
	}

	var req models.SummaryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := deps.Summarizer.Summarize(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPolicyNotFound):
			utils.WriteErrorResponse(w, models.CodePolicyNotFound, map[string]interface{}{
				"policy_id": req.PolicyID,
			})
		case errors.Is(err, services.ErrSummarizerUnavailable):
			utils.WriteErrorResponse(w, models.CodeSummarizerUnavailable, nil)
		default:
			utils.WriteErrorResponse(w, models.CodeThirdPartyAPIError, nil)
		}
		return
	}

	utils.WriteSuccessResponse(w, models.SummaryResponse{
		Success:     true,
		PolicyID:    result.PolicyID,
		PolicyTitle: result.PolicyTitle,
		Summary:     result.Summary,
		Timestamp:   deps.now().Format(time.RFC3339),
		Cached:      result.Cached,
	})
}

// ClearCacheHandler godoc
// @Summary 캐시 초기화 (관리자용)
// @Description 추천 캐시와 요약 캐시를 모두 비운다
// @Tags 관리
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CacheClearResponse} "성공"
// @Router /api/cache [delete]
func ClearCacheHandler(w http.ResponseWriter, r *http.Request, deps *Deps) {
	recommendations := deps.Recommender.ClearCache()
	summaries := deps.Summarizer.ClearCache()
	logger.Info("Caches cleared", "recommendations", recommendations, "summaries", summaries)

	utils.WriteSuccessResponse(w, models.CacheClearResponse{
		RecommendationsCleared: recommendations,
		SummariesCleared:       summaries,
		Timestamp:              deps.now().Format(time.RFC3339),
	})
}

// StatsHandler godoc
// @Summary 서버 통계
// @Description 정책 수, 점수 계산 방식, 캐시 크기와 적중률
// @Tags 관리
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.StatsResponse} "성공"
// @Router /api/stats [get]
func StatsHandler(w http.ResponseWriter, r *http.Request, deps *Deps) {
	stats := deps.Recommender.CacheStats()
	total := deps.Recommender.TotalPolicies()

	utils.WriteSuccessResponse(w, models.StatsResponse{
		ModelLoaded:             total > 0,
		Mode:                    string(deps.Recommender.Mode()),
		SummarizerConfigured:    deps.Summarizer.Configured(),
		TotalPolicies:           total,
		RecommendationCacheSize: stats.Size,
		SummaryCacheSize:        deps.Summarizer.CacheSize(),
		MaxCacheSize:            stats.MaxSize,
		CacheHits:               stats.Hits,
		CacheMisses:             stats.Misses,
		CacheEvictions:          stats.Evictions,
		Timestamp:               deps.now().Format(time.RFC3339),
	})
}

// parseTopK top_k 쿼리 파라미터 검증. 없으면 기본값
func parseTopK(w http.ResponseWriter, r *http.Request, deps *Deps) (int, bool) {
	raw := r.URL.Query().Get("top_k")
	if raw == "" {
		return deps.Config.Recommend.DefaultTopK, true
	}

	topK, err := strconv.Atoi(raw)
	if err != nil || topK < 1 || topK > deps.Config.Recommend.MaxTopK {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"param": "top_k",
			"min":   1,
			"max":   deps.Config.Recommend.MaxTopK,
		})
		return 0, false
	}
	return topK, true
}

// decodeAndValidate JSON 본문을 해석하고 구조체 태그로 검증한다
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Body == nil || r.ContentLength == 0 {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "body",
		})
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, "요청 본문을 해석할 수 없습니다", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}

	if err := validation.ValidateStruct(dst); err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, verr.Error(), map[string]interface{}{
				"fields": verr.Fields,
			})
			return false
		}
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), nil)
		return false
	}
	return true
}
