package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_policy_ai/corpus"
	"youth_policy_ai/models"
)

func TestKeywordScorer(t *testing.T) {
	education := newPolicy("edu", models.CategoryEducation, "전국", nil)
	housing := newPolicy("home", models.CategoryHousing, "전국", nil)
	other := newPolicy("etc", models.CategoryOther, "전국", nil)

	scored, err := keywordScorer{}.Score(context.Background(),
		models.UserProfile{Age: 22, Interests: []string{"장학금"}},
		[]*models.PolicyRecord{education, housing, other})
	require.NoError(t, err)

	require.Len(t, scored, 3)
	assert.Equal(t, 0.8, scored[0].Score)
	assert.Equal(t, 0.1, scored[1].Score)
	assert.Equal(t, 0.1, scored[2].Score)
}

func TestKeywordScorer_NoInterests(t *testing.T) {
	scored, err := keywordScorer{}.Score(context.Background(),
		models.UserProfile{Age: 22},
		[]*models.PolicyRecord{newPolicy("job", models.CategoryJob, "전국", nil)})
	require.NoError(t, err)
	assert.Equal(t, KeywordBaseScore, scored[0].Score)
}

func TestAffinity_SharedAcrossCategories(t *testing.T) {
	a := newAffinity([]string{"취업", "월세"})

	assert.True(t, a.matches(models.CategoryJob))
	assert.True(t, a.matches(models.CategoryHousing))
	assert.False(t, a.matches(models.CategoryEducation))
	assert.True(t, a.any())

	assert.False(t, newAffinity([]string{"여행"}).any())
}

func TestEmbeddingScorer_BoostIsExact(t *testing.T) {
	job := newPolicy("job", models.CategoryJob, "전국", nil)
	edu := newPolicy("edu", models.CategoryEducation, "전국", nil)
	jobVec := []float32{0.6, 0.8, 0}
	eduVec := []float32{0.2, 0.3, 0.9}

	c, err := corpus.New([]*models.PolicyRecord{job, edu}, [][]float32{jobVec, eduVec})
	require.NoError(t, err)

	query := []float32{0.5, 0.5, 0.5}
	scorer, err := NewScorer(c, &staticEmbedder{vec: query})
	require.NoError(t, err)
	assert.Equal(t, models.ModeEmbedding, scorer.Mode())

	scored, err := scorer.Score(context.Background(),
		models.UserProfile{Age: 24, Interests: []string{"취업"}},
		c.All())
	require.NoError(t, err)

	s := CosineSimilarity(query, jobVec)
	assert.Equal(t, s*1.3, scored[0].Score)
	assert.Equal(t, CosineSimilarity(query, eduVec), scored[1].Score)
}

func TestEmbeddingScorer_EncodeFailure(t *testing.T) {
	c, err := corpus.New(
		[]*models.PolicyRecord{newPolicy("job", models.CategoryJob, "전국", nil)},
		[][]float32{{1, 0}},
	)
	require.NoError(t, err)

	scorer, err := NewScorer(c, &staticEmbedder{err: errProviderDown})
	require.NoError(t, err)

	_, err = scorer.Score(context.Background(), models.UserProfile{Age: 24}, c.All())
	assert.ErrorIs(t, err, ErrEncodeFailed)
	assert.ErrorIs(t, err, errProviderDown)
}

func TestEmbeddingScorer_DimensionMismatch(t *testing.T) {
	c, err := corpus.New(
		[]*models.PolicyRecord{newPolicy("job", models.CategoryJob, "전국", nil)},
		[][]float32{{1, 0}},
	)
	require.NoError(t, err)

	scorer, err := NewScorer(c, &staticEmbedder{vec: []float32{1, 0, 0}})
	require.NoError(t, err)

	_, err = scorer.Score(context.Background(), models.UserProfile{Age: 24}, c.All())
	assert.ErrorIs(t, err, ErrEncodeFailed)
}

func TestNewScorer_EmbeddingModeNeedsEmbedder(t *testing.T) {
	c, err := corpus.New(
		[]*models.PolicyRecord{newPolicy("job", models.CategoryJob, "전국", nil)},
		[][]float32{{1, 0}},
	)
	require.NoError(t, err)

	_, err = NewScorer(c, nil)
	assert.Error(t, err)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1}, []float32{1, 1}))
}
