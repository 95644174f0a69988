package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/swaggo/swag" // swag 문서 생성기

	"youth_policy_ai/config"
	"youth_policy_ai/handlers"
	"youth_policy_ai/llm"
	"youth_policy_ai/logger"
	"youth_policy_ai/recommend"
	"youth_policy_ai/scheduler"
	"youth_policy_ai/services"
)

func main() {
	cfg := config.Load()

	// 로그 시스템 초기화
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("Logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// 코퍼스 로드와 임베딩 계산
	c, embedder, err := services.BuildCorpus(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build corpus: %w", err)
	}

	engine, err := recommend.NewEngine(c, embedder, recommend.Options{
		MaxCacheSize: cfg.Recommend.MaxCacheSize,
		Seed:         cfg.Recommend.Seed,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	recommender := services.NewRecommendationService(engine)

	// Gemini 는 API 키가 있을 때만 사용
	var generator llm.Generator
	if cfg.Gemini.APIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Warn("Gemini client unavailable, summaries disabled", "error", err)
		} else {
			generator = llm.WithCircuitBreaker(gemini, llm.DefaultBreakerSettings())
			defer func() {
				if err := generator.Close(); err != nil {
					logger.Warn("Failed to close Gemini client", "error", err)
				}
			}()
			logger.Info("Gemini summarizer enabled", "model", cfg.Gemini.Model)
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, summaries disabled")
	}
	summarizer := services.NewSummaryService(c, generator, cfg.Summary.MaxCacheSize,
		time.Duration(cfg.Gemini.TimeoutSec)*time.Second)

	router := handlers.NewRouter(&handlers.Deps{
		Config:      cfg,
		Recommender: recommender,
		Summarizer:  summarizer,
	})

	// 캐시 초기화 스케줄러 시작
	sched := scheduler.Start(ctx, cfg, recommender, summarizer)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Timeouts.RequestSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Timeouts.ResponseSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Timeouts.IdleSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", cfg.Server.Addr, "mode", recommender.Mode(), "policies", recommender.TotalPolicies())
		logger.Info("Swagger docs available", "url", fmt.Sprintf("http://%s/swagger/index.html", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	sched.Wait()
	logger.Info("Server stopped")
	return nil
}
