package models

// 응답 코드 정의
const (
	// 성공
	CodeSuccess = 0

	// 클라이언트 오류 (1000-1999)
	CodeInvalidParams  = 1000 // 잘못된 파라미터
	CodeMissingParams  = 1001 // 필수 파라미터 누락
	CodePolicyNotFound = 1002 // 정책을 찾을 수 없음
	CodeRateLimited    = 1003 // 요청 한도 초과

	// 서버 오류 (2000-2999)
	CodeServerError           = 2000 // 서버 내부 오류
	CodeCorpusUnavailable     = 2002 // 정책 데이터 미로딩
	CodeRecommendGenError     = 2003 // 추천 생성 오류
	CodeSummarizerUnavailable = 2004 // 요약 기능 미설정
	CodeThirdPartyAPIError    = 2005 // 외부 API 오류
)

// 코드별 메시지
var CodeMessages = map[int]string{
	CodeSuccess:               "success",
	CodeInvalidParams:         "잘못된 파라미터입니다",
	CodeMissingParams:         "필수 파라미터가 누락되었습니다",
	CodePolicyNotFound:        "정책을 찾을 수 없습니다",
	CodeRateLimited:           "요청이 너무 많습니다",
	CodeServerError:           "서버 내부 오류",
	CodeCorpusUnavailable:     "정책 데이터가 로드되지 않았습니다",
	CodeRecommendGenError:     "추천 생성 오류",
	CodeSummarizerUnavailable: "AI 요약 기능이 설정되지 않았습니다",
	CodeThirdPartyAPIError:    "외부 API 오류",
}

// 주의: APIResponse 구조체는 swagger_models.go에 정의되어 있다

// NewSuccessResponse 성공 응답 생성
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse 오류 응답 생성
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "알 수 없는 오류"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse 사용자 정의 메시지 오류 응답 생성
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
