package corpus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_policy_ai/models"
)

func policy(id string) *models.PolicyRecord {
	return &models.PolicyRecord{
		ID:                id,
		Title:             "정책 " + id,
		Category:          models.CategoryJob,
		SupervisingRegion: "전국",
		PeriodKind:        models.PeriodOngoing,
	}
}

type fakeEmbedder struct {
	mu    sync.Mutex
	calls int
	dim   int
	err   error
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, f.dim)
		vec[0] = float32(len(text))
		out[i] = vec
	}
	return out, nil
}

func TestNew_KeywordMode(t *testing.T) {
	c, err := New([]*models.PolicyRecord{policy("a"), policy("b")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, models.ModeKeyword, c.Mode())
	assert.Equal(t, 0, c.Dimension())

	p, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "b", p.ID)

	_, ok = c.EmbeddingFor("a")
	assert.False(t, ok)
}

func TestNew_EmbeddingMode(t *testing.T) {
	c, err := New(
		[]*models.PolicyRecord{policy("a"), policy("b")},
		[][]float32{{1, 0, 0}, {0, 1, 0}},
	)
	require.NoError(t, err)

	assert.Equal(t, models.ModeEmbedding, c.Mode())
	assert.Equal(t, 3, c.Dimension())

	vec, ok := c.EmbeddingFor("b")
	require.True(t, ok)
	assert.Equal(t, []float32{0, 1, 0}, vec)
}

func TestNew_PreservesLoadOrder(t *testing.T) {
	c, err := New([]*models.PolicyRecord{policy("z"), policy("a"), policy("m")}, nil)
	require.NoError(t, err)

	ids := make([]string, 0, c.Size())
	for _, p := range c.All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestNew_Rejects(t *testing.T) {
	badAge := policy("x")
	badAge.AgeRange = &models.AgeRange{Min: 30, Max: 20}

	tests := []struct {
		name       string
		records    []*models.PolicyRecord
		embeddings [][]float32
	}{
		{"duplicate id", []*models.PolicyRecord{policy("a"), policy("a")}, nil},
		{"invalid record", []*models.PolicyRecord{badAge}, nil},
		{"nil record", []*models.PolicyRecord{nil}, nil},
		{"count mismatch", []*models.PolicyRecord{policy("a")}, [][]float32{{1}, {2}}},
		{"dimension mismatch", []*models.PolicyRecord{policy("a"), policy("b")}, [][]float32{{1, 2}, {1}}},
		{"empty vector", []*models.PolicyRecord{policy("a")}, [][]float32{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records, tt.embeddings)
			assert.Error(t, err)
		})
	}
}

func TestBuild_NilEmbedderIsKeywordMode(t *testing.T) {
	c, err := Build(context.Background(), []*models.PolicyRecord{policy("a")}, nil, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.ModeKeyword, c.Mode())
}

func TestBuild_EmbedsInBatches(t *testing.T) {
	records := make([]*models.PolicyRecord, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		records = append(records, policy(id))
	}
	emb := &fakeEmbedder{dim: 4}

	c, err := Build(context.Background(), records, emb, BuildOptions{BatchSize: 3, Concurrency: 2})
	require.NoError(t, err)

	assert.Equal(t, models.ModeEmbedding, c.Mode())
	assert.Equal(t, 4, c.Dimension())
	assert.Equal(t, 3, emb.calls)
	for _, p := range records {
		vec, ok := c.EmbeddingFor(p.ID)
		require.True(t, ok, p.ID)
		assert.Equal(t, float32(len(p.EmbeddingText())), vec[0])
	}
}

func TestBuild_FallsBackOnEmbeddingFailure(t *testing.T) {
	emb := &fakeEmbedder{dim: 4, err: errors.New("provider down")}

	c, err := Build(context.Background(), []*models.PolicyRecord{policy("a"), policy("b")}, emb, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.ModeKeyword, c.Mode())
	assert.Equal(t, 2, c.Size())
}

func TestBuild_InvalidRecordsFailBeforeEmbedding(t *testing.T) {
	emb := &fakeEmbedder{dim: 4}

	_, err := Build(context.Background(), []*models.PolicyRecord{policy("a"), policy("a")}, emb, BuildOptions{})
	assert.Error(t, err)
	assert.Equal(t, 0, emb.calls)
}
