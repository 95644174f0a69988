package recommend

import (
	"context"
	"fmt"
	"math"

	"youth_policy_ai/embedding"
	"youth_policy_ai/models"
)

// Corpus 엔진이 사용하는 읽기 전용 정책 집합
type Corpus interface {
	Size() int
	All() []*models.PolicyRecord
	EmbeddingFor(id string) ([]float32, bool)
	Dimension() int
	Mode() models.ScoringMode
}

// Scorer 자격 후보마다 점수 부여. 출력 순서는 입력 순서를 따른다
type Scorer interface {
	Mode() models.ScoringMode
	Score(ctx context.Context, profile models.UserProfile, candidates []*models.PolicyRecord) ([]models.ScoredCandidate, error)
}

// NewScorer 코퍼스 모드에 맞는 방식 선택. 임베딩 모드는 질의용 embedder 가 필요하다
func NewScorer(corpus Corpus, embedder embedding.Embedder) (Scorer, error) {
	switch corpus.Mode() {
	case models.ModeEmbedding:
		if embedder == nil {
			return nil, fmt.Errorf("embedding mode requires an embedder")
		}
		return &embeddingScorer{corpus: corpus, embedder: embedder}, nil
	case models.ModeKeyword:
		return keywordScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring mode %q", corpus.Mode())
	}
}

// keywordScorer 임베딩이 없는 코퍼스용
type keywordScorer struct{}

func (keywordScorer) Mode() models.ScoringMode { return models.ModeKeyword }

func (keywordScorer) Score(_ context.Context, profile models.UserProfile, candidates []*models.PolicyRecord) ([]models.ScoredCandidate, error) {
	aff := newAffinity(profile.Interests)
	hasAffinity := aff.any()

	scored := make([]models.ScoredCandidate, len(candidates))
	for i, p := range candidates {
		score := KeywordBaseScore
		if hasAffinity && aff.matches(p.Category) {
			score = KeywordMatchScore
		}
		scored[i] = models.ScoredCandidate{Policy: p, Score: score}
	}
	return scored, nil
}

// embeddingScorer 질의 임베딩과 정책 임베딩의 코사인 유사도
type embeddingScorer struct {
	corpus   Corpus
	embedder embedding.Embedder
}

func (s *embeddingScorer) Mode() models.ScoringMode { return models.ModeEmbedding }

func (s *embeddingScorer) Score(ctx context.Context, profile models.UserProfile, candidates []*models.PolicyRecord) ([]models.ScoredCandidate, error) {
	query := SynthesizeQuery(profile)
	vec, err := embedding.EmbedOne(ctx, s.embedder, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	if dim := s.corpus.Dimension(); dim > 0 && len(vec) != dim {
		return nil, fmt.Errorf("%w: query dimension %d, corpus dimension %d", ErrEncodeFailed, len(vec), dim)
	}

	aff := newAffinity(profile.Interests)
	queryNorm := norm(vec)

	scored := make([]models.ScoredCandidate, len(candidates))
	for i, p := range candidates {
		emb, ok := s.corpus.EmbeddingFor(p.ID)
		if !ok {
			return nil, fmt.Errorf("policy %s has no embedding", p.ID)
		}
		score := cosine(vec, queryNorm, emb)
		if aff.matches(p.Category) {
			score *= CategoryBoost
		}
		scored[i] = models.ScoredCandidate{Policy: p, Score: score}
	}
	return scored, nil
}

// CosineSimilarity a, b 의 코사인 유사도. 길이가 0 이거나 차원이 다르면 0
func CosineSimilarity(a, b []float32) float64 {
	return cosine(a, norm(a), b)
}

func cosine(a []float32, aNorm float64, b []float32) float64 {
	if len(a) != len(b) || aNorm == 0 {
		return 0
	}
	var dot, bb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		bb += float64(b[i]) * float64(b[i])
	}
	if bb == 0 {
		return 0
	}
	return dot / (aNorm * math.Sqrt(bb))
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
