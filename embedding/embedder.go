// Package embedding 로드 시 정책 텍스트와 요청 시 사용자 질의를 벡터로 바꾸는 임베딩 프로바이더
package embedding

import (
	"context"
	"fmt"
	"strings"
)

// 프로바이더 이름
const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Embedder 텍스트 배치를 입력 순서대로 텍스트당 벡터 하나로 변환
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Options 임베딩 프로바이더 설정
type Options struct {
	Provider string
	Model    string
	APIKey   string
	Host     string
}

// New 이름에 맞는 Embedder 생성. none 또는 빈 이름이면 (nil, nil) 을 반환하고
// 호출 측은 키워드 대체 모드로 동작한다
func New(opts Options) (Embedder, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderNone:
		return nil, nil
	case ProviderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("embedding: openai provider requires an api key")
		}
		return NewOpenAI(opts.APIKey, opts.Model), nil
	case ProviderOllama:
		host := opts.Host
		if host == "" {
			host = "http://localhost:11434"
		}
		model := opts.Model
		if model == "" {
			model = "paraphrase-multilingual"
		}
		return NewOllama(host, model), nil
	default:
		return nil, fmt.Errorf("embedding: unknown provider %q; valid providers: none, openai, ollama", opts.Provider)
	}
}

// EmbedOne 텍스트 한 건 임베딩
func EmbedOne(ctx context.Context, e Embedder, text string) ([]float32, error) {
	vectors, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding: expected 1 vector, got %d", len(vectors))
	}
	if len(vectors[0]) == 0 {
		return nil, fmt.Errorf("embedding: empty vector")
	}
	return vectors[0], nil
}
