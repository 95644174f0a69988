package docs

// @title 청년정책 AI 추천 API
// @version 2.0.0
// @description 사용자 프로필 기반 청년정책 추천과 Gemini 정책 요약 서비스
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /
// @schemes http https
