package utils

import (
	"net/http"

	"github.com/goccy/go-json"

	"youth_policy_ai/models"
)

// WriteFormattedJSON 상태 코드와 함께 들여쓴 JSON을 출력
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 4칸 들여쓰기
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(data)
}

// WriteSuccessResponse 성공 응답 작성
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, http.StatusOK, models.NewSuccessResponse(data))
}

// WriteErrorResponse 오류 응답 작성. HTTP 상태는 응답 코드에서 결정된다
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, StatusForCode(code), models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse 사용자 정의 메시지 오류 응답 작성
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, StatusForCode(code), models.NewCustomErrorResponse(code, message, data))
}

// StatusForCode 응답 코드에 대응하는 HTTP 상태
func StatusForCode(code int) int {
	switch code {
	case models.CodeSuccess:
		return http.StatusOK
	case models.CodeInvalidParams, models.CodeMissingParams:
		return http.StatusBadRequest
	case models.CodePolicyNotFound:
		return http.StatusNotFound
	case models.CodeRateLimited:
		return http.StatusTooManyRequests
	case models.CodeCorpusUnavailable, models.CodeSummarizerUnavailable:
		return http.StatusServiceUnavailable
	case models.CodeThirdPartyAPIError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
