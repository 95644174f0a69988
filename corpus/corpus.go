// Package corpus 변경되지 않는 인메모리 정책 집합과 (임베딩 사용 시) 정책별 벡터
package corpus

import (
	"fmt"

	"youth_policy_ai/models"
)

// Corpus 시작 시 한 번 만들고 이후 읽기만 하므로 잠금이 없다
type Corpus struct {
	policies   []*models.PolicyRecord
	byID       map[string]*models.PolicyRecord
	embeddings map[string][]float32
	dimension  int
}

// New 레코드를 검증하고 코퍼스 생성. embeddings 는 nil (키워드 모드) 이거나
// records 와 같은 순서로 같은 차원의 벡터를 하나씩 가진다
func New(records []*models.PolicyRecord, embeddings [][]float32) (*Corpus, error) {
	if embeddings != nil && len(embeddings) != len(records) {
		return nil, fmt.Errorf("corpus: %d embeddings for %d policies", len(embeddings), len(records))
	}

	c := &Corpus{
		policies: make([]*models.PolicyRecord, 0, len(records)),
		byID:     make(map[string]*models.PolicyRecord, len(records)),
	}
	if embeddings != nil {
		c.embeddings = make(map[string][]float32, len(records))
	}

	for i, p := range records {
		if p == nil {
			return nil, fmt.Errorf("corpus: nil policy at index %d", i)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("corpus: %w", err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("corpus: duplicate policy id %s", p.ID)
		}
		c.byID[p.ID] = p
		c.policies = append(c.policies, p)

		if embeddings == nil {
			continue
		}
		vec := embeddings[i]
		if len(vec) == 0 {
			return nil, fmt.Errorf("corpus: policy %s has an empty embedding", p.ID)
		}
		if c.dimension == 0 {
			c.dimension = len(vec)
		} else if len(vec) != c.dimension {
			return nil, fmt.Errorf("corpus: policy %s embedding dimension %d, expected %d", p.ID, len(vec), c.dimension)
		}
		c.embeddings[p.ID] = vec
	}

	return c, nil
}

// Size 정책 수
func (c *Corpus) Size() int {
	return len(c.policies)
}

// All 로드 순서대로 정책 목록. 호출자는 슬라이스를 수정하면 안 된다
func (c *Corpus) All() []*models.PolicyRecord {
	return c.policies
}

// Get ID 로 정책 조회
func (c *Corpus) Get(id string) (*models.PolicyRecord, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// EmbeddingFor 정책의 사전 계산 벡터
func (c *Corpus) EmbeddingFor(id string) ([]float32, bool) {
	vec, ok := c.embeddings[id]
	return vec, ok
}

// Dimension 임베딩 차원 (키워드 모드는 0)
func (c *Corpus) Dimension() int {
	return c.dimension
}

// Mode 벡터가 있으면 임베딩 모드
func (c *Corpus) Mode() models.ScoringMode {
	if c.embeddings != nil && len(c.policies) > 0 {
		return models.ModeEmbedding
	}
	return models.ModeKeyword
}
