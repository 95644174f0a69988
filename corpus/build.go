package corpus

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"youth_policy_ai/embedding"
	"youth_policy_ai/logger"
	"youth_policy_ai/models"
)

// BuildOptions 로드 시 임베딩 계산 설정
type BuildOptions struct {
	BatchSize   int
	Concurrency int
	Timeout     time.Duration
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.BatchSize <= 0 {
		o.BatchSize = 64
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 4
	}
	return o
}

// Build 모든 정책을 임베딩해 임베딩 모드 코퍼스를 만든다. embedder 가 nil 이면 키워드 모드.
// 임베딩이 실패하면 로그를 남기고 키워드 모드로 대체하지만 잘못된 레코드는 오류다
func Build(ctx context.Context, records []*models.PolicyRecord, embedder embedding.Embedder, opts BuildOptions) (*Corpus, error) {
	if embedder == nil || len(records) == 0 {
		logger.Info("Building corpus in keyword mode", "policies", len(records))
		return New(records, nil)
	}

	// 임베딩 호출 전에 레코드 검증
	if _, err := New(records, nil); err != nil {
		return nil, err
	}

	start := time.Now()
	vectors, err := EmbedPolicies(ctx, records, embedder, opts)
	if err != nil {
		logger.Warn("Policy embedding failed, falling back to keyword mode",
			"policies", len(records),
			"error", err)
		return New(records, nil)
	}

	c, err := New(records, vectors)
	if err != nil {
		logger.Warn("Policy embeddings rejected, falling back to keyword mode", "error", err)
		return New(records, nil)
	}

	logger.Info("Policy embeddings computed",
		"policies", c.Size(),
		"dimension", c.Dimension(),
		"duration", time.Since(start).String())
	return c, nil
}

// EmbedPolicies 동시성을 제한한 배치로 정책 텍스트 임베딩. 결과는 records 와 같은 순서
func EmbedPolicies(ctx context.Context, records []*models.PolicyRecord, embedder embedding.Embedder, opts BuildOptions) ([][]float32, error) {
	opts = opts.withDefaults()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	texts := make([]string, len(records))
	for i, p := range records {
		texts[i] = p.EmbeddingText()
	}

	vectors := make([][]float32, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for start := 0; start < len(texts); start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(texts))
		g.Go(func() error {
			batch, err := embedder.Embed(gctx, texts[start:end])
			if err != nil {
				return fmt.Errorf("embed policies %d-%d: %w", start, end-1, err)
			}
			if len(batch) != end-start {
				return fmt.Errorf("embed policies %d-%d: got %d vectors", start, end-1, len(batch))
			}
			copy(vectors[start:end], batch)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}
