// Package docs handlers 의 swag 주석과 같은 내용의 OpenAPI 문서를 등록한다.
// 주석을 바꾸면 이 템플릿도 함께 고친다
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "서비스 이름과 문서 위치를 반환",
                "produces": ["application/json"],
                "tags": ["기본"],
                "summary": "서비스 정보",
                "responses": {
                    "200": {"description": "성공", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "정책 데이터 로딩 상태와 점수 계산 방식을 반환",
                "produces": ["application/json"],
                "tags": ["기본"],
                "summary": "헬스 체크",
                "responses": {
                    "200": {"description": "성공", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.HealthResponse"}}}]}}
                }
            }
        },
        "/api/recommendations": {
            "post": {
                "description": "사용자 프로필(나이, 전공, 관심사, 지역)로 자격 조건을 만족하는 정책을 추천. 같은 프로필과 top_k 요청은 캐시된 결과를 반환",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["추천"],
                "summary": "맞춤 정책 추천",
                "parameters": [
                    {"type": "integer", "description": "추천 개수 (1-20, 기본 5)", "name": "top_k", "in": "query"},
                    {"description": "사용자 프로필", "name": "profile", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UserProfile"}}
                ],
                "responses": {
                    "200": {"description": "성공", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RecommendationResponse"}}}]}},
                    "400": {"description": "파라미터 오류", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "500": {"description": "서버 오류", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "정책 데이터 미로딩", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/summary": {
            "post": {
                "description": "사용자 정보에 맞춘 2-3문장 정책 요약을 Gemini로 생성. IP당 분당 요청 수 제한",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI 요약"],
                "summary": "정책 AI 요약",
                "parameters": [
                    {"description": "요약 요청", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SummaryRequest"}}
                ],
                "responses": {
                    "200": {"description": "성공", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SummaryResponse"}}}]}},
                    "400": {"description": "파라미터 오류", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "정책 없음", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "429": {"description": "요청 한도 초과", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "요약 기능 미설정", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/cache": {
            "delete": {
                "description": "추천 캐시와 요약 캐시를 모두 비운다",
                "produces": ["application/json"],
                "tags": ["관리"],
                "summary": "캐시 초기화 (관리자용)",
                "responses": {
                    "200": {"description": "성공", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.CacheClearResponse"}}}]}}
                }
            }
        },
        "/api/stats": {
            "get": {
                "description": "정책 수, 점수 계산 방식, 캐시 크기와 적중률",
                "produces": ["application/json"],
                "tags": ["관리"],
                "summary": "서버 통계",
                "responses": {
                    "200": {"description": "성공", "schema": {"allOf": [{"$ref": "#/definitions/models.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.StatsResponse"}}}]}}
                }
            }
        }
    },
    "definitions": {
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 0},
                "data": {},
                "message": {"type": "string", "example": "success"}
            }
        },
        "models.UserProfile": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "maximum": 39, "minimum": 15, "example": 24},
                "interests": {"type": "array", "items": {"type": "string"}, "example": ["취업", "창업"]},
                "location": {"type": "string", "example": "서울"},
                "major": {"type": "string", "example": "컴퓨터공학"},
                "user_id": {"type": "string", "example": "user_001"}
            }
        },
        "models.PolicyPayload": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "plcyNm": {"type": "string"},
                "bscPlanPlcyWayNoNm": {"type": "string"},
                "plcyExplnCn": {"type": "string"},
                "rgtrupInstCdNm": {"type": "string"},
                "aplyPrdSeCd": {"type": "string"},
                "aplyPrdEndYmd": {"type": "string"},
                "applicationUrl": {"type": "string"},
                "requirements": {"type": "array", "items": {"type": "string"}},
                "saves": {"type": "integer"},
                "isBookmarked": {"type": "boolean"},
                "recommendationScore": {"type": "number"}
            }
        },
        "models.RecommendationResponse": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.PolicyPayload"}},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"},
                "total_recommendations": {"type": "integer"},
                "user_id": {"type": "string"}
            }
        },
        "models.SummaryRequest": {
            "type": "object",
            "required": ["policy_id"],
            "properties": {
                "policy_id": {"type": "string"},
                "user_age": {"type": "integer"},
                "user_interests": {"type": "array", "items": {"type": "string"}},
                "user_major": {"type": "string"}
            }
        },
        "models.SummaryResponse": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "policy_id": {"type": "string"},
                "policy_title": {"type": "string"},
                "success": {"type": "boolean"},
                "summary": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "mode": {"type": "string"},
                "model_loaded": {"type": "boolean"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "total_policies": {"type": "integer"}
            }
        },
        "models.StatsResponse": {
            "type": "object",
            "properties": {
                "cache_evictions": {"type": "integer"},
                "cache_hits": {"type": "integer"},
                "cache_misses": {"type": "integer"},
                "gemini_configured": {"type": "boolean"},
                "max_cache_size": {"type": "integer"},
                "mode": {"type": "string"},
                "model_loaded": {"type": "boolean"},
                "recommendation_cache_size": {"type": "integer"},
                "summary_cache_size": {"type": "integer"},
                "timestamp": {"type": "string"},
                "total_policies": {"type": "integer"}
            }
        },
        "models.CacheClearResponse": {
            "type": "object",
            "properties": {
                "recommendations_cleared": {"type": "integer"},
                "summaries_cleared": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo 문서 기본 정보
var SwaggerInfo = &swag.Spec{
	Version:          "2.0.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "청년정책 AI 추천 API",
	Description:      "사용자 프로필 기반 청년정책 추천과 Gemini 정책 요약 서비스",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
