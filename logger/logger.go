package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"youth_policy_ai/config"
)

// Logger 전역 로거. Init 이전에도 사용할 수 있도록 기본 로거로 초기화된다.
var Logger = slog.Default()

// ParseLevel 문자열 로그 레벨을 slog.Level로 변환
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openWriter 출력 대상 결정 (stdout / file / both)
func openWriter(output, filePath string) (io.Writer, error) {
	mode := strings.ToLower(output)
	if mode != "file" && mode != "both" {
		return os.Stdout, nil
	}

	if filePath == "" {
		filePath = "logs/app.log"
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	if mode == "both" {
		return io.MultiWriter(os.Stdout, file), nil
	}
	return file, nil
}

// NewHandler 포맷(text/json)에 맞는 slog 핸들러 생성
func NewHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// InitSlog slog 로깅 시스템 초기화
func InitSlog(cfg *config.Config) error {
	writer, err := openWriter(cfg.Log.Output, cfg.Log.FilePath)
	if err != nil {
		return err
	}

	Logger = slog.New(NewHandler(writer, cfg.Log.Level, cfg.Log.Format))
	slog.SetDefault(Logger)

	return nil
}

// Init 설정 파일로 로깅 시스템 초기화
func Init(cfg *config.Config) error {
	return InitSlog(cfg)
}

// With 컴포넌트 등 공통 속성이 붙은 하위 로거
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}

// Debug 디버그 레벨 로그
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info 정보 레벨 로그
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn 경고 레벨 로그
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error 오류 레벨 로그
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
