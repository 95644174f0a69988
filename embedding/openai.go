package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiEmbedder OpenAI 임베딩 API 기반 Embedder
type openaiEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAI OpenAI 임베더 생성. 모델이 비어 있으면 text-embedding-3-small 사용
func NewOpenAI(apiKey, model string) Embedder {
	m := openai.SmallEmbedding3
	if model != "" {
		m = openai.EmbeddingModel(model)
	}
	return &openaiEmbedder{
		client: openai.NewClient(apiKey),
		model:  m,
	}
}

func (o *openaiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: o.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embed: %w", err)
	}

	result := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("openai embed: index %d out of range", d.Index)
		}
		result[d.Index] = d.Embedding
	}
	return result, nil
}
