package services

import (
	"context"
	"fmt"
	"time"

	"youth_policy_ai/config"
	"youth_policy_ai/corpus"
	"youth_policy_ai/db"
	"youth_policy_ai/embedding"
	"youth_policy_ai/logger"
	"youth_policy_ai/models"
	"youth_policy_ai/repository"
)

// LoadPolicies 설정된 소스(file | mysql)에서 정책을 읽는다
func LoadPolicies(ctx context.Context, cfg *config.Config) ([]*models.PolicyRecord, error) {
	switch cfg.Corpus.Source {
	case "file":
		return repository.LoadPoliciesFromFile(cfg.Corpus.Path)
	case "mysql":
		if err := db.InitMySQLWithConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("Failed to close MySQL", "error", err)
			}
		}()
		return repository.LoadPoliciesFromMySQL(ctx, cfg.Corpus.Table)
	default:
		return nil, fmt.Errorf("unknown corpus source %q; valid sources: file, mysql", cfg.Corpus.Source)
	}
}

// NewEmbedder 설정에 맞는 임베딩 프로바이더. provider=none 이면 nil
func NewEmbedder(cfg *config.Config) (embedding.Embedder, error) {
	return embedding.New(embedding.Options{
		Provider: cfg.Embedding.Provider,
		Model:    cfg.Embedding.Model,
		APIKey:   cfg.Embedding.APIKey,
		Host:     cfg.Embedding.Host,
	})
}

// BuildCorpus 정책을 로드하고 임베딩을 계산해 코퍼스를 만든다.
// 임베딩 실패 시 코퍼스는 키워드 모드가 되며, 이 경우 반환되는 embedder 는 nil 이다
func BuildCorpus(ctx context.Context, cfg *config.Config) (*corpus.Corpus, embedding.Embedder, error) {
	policies, err := LoadPolicies(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Policies loaded", "source", cfg.Corpus.Source, "count", len(policies))

	embedder, err := NewEmbedder(cfg)
	if err != nil {
		return nil, nil, err
	}

	c, err := corpus.Build(ctx, policies, embedder, corpus.BuildOptions{
		BatchSize:   cfg.Embedding.BatchSize,
		Concurrency: cfg.Embedding.Concurrency,
		Timeout:     time.Duration(cfg.Embedding.TimeoutSec) * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}

	if c.Mode() != models.ModeEmbedding {
		embedder = nil
	}
	logger.Info("Corpus ready", "policies", c.Size(), "mode", c.Mode(), "dimension", c.Dimension())
	return c, embedder, nil
}
