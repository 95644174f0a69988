package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_policy_ai/corpus"
	"youth_policy_ai/models"
)

func scenarioCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New([]*models.PolicyRecord{
		newPolicy("P1", models.CategoryJob, "전국", ages(18, 29)),
		newPolicy("P2", models.CategoryEducation, "서울", ages(20, 39)),
		newPolicy("P3", models.CategoryHousing, "부산", nil),
	}, nil)
	require.NoError(t, err)
	return c
}

func newTestEngine(t *testing.T, c Corpus, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(c, nil, opts)
	require.NoError(t, err)
	return e
}

func TestRecommend_KeywordScenario(t *testing.T) {
	e := newTestEngine(t, scenarioCorpus(t), Options{Seed: 1})

	res, err := e.Recommend(context.Background(),
		models.UserProfile{Age: 24, Location: "서울", Interests: []string{"취업"}}, 2)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.Cached)
	assert.Equal(t, models.ModeKeyword, res.Mode)
	assert.Equal(t, 2, res.TotalReturned)
	assert.Equal(t, []string{"P1", "P2"}, ids(res.Items))
	assert.Equal(t, 0.8, res.Items[0].RecommendationScore)
	assert.Equal(t, 0.1, res.Items[1].RecommendationScore)
}

func TestRecommend_NonPositiveK(t *testing.T) {
	e := newTestEngine(t, scenarioCorpus(t), Options{})

	for _, k := range []int{0, -1} {
		res, err := e.Recommend(context.Background(), models.UserProfile{Age: 24}, k)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Empty(t, res.Items)
		assert.NotNil(t, res.Items)
		assert.Equal(t, 0, res.TotalReturned)
	}
}

func TestRecommend_NoEligiblePolicies(t *testing.T) {
	e := newTestEngine(t, scenarioCorpus(t), Options{})

	res, err := e.Recommend(context.Background(), models.UserProfile{Age: 24, Location: "제주"}, 5)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"P1"}, ids(res.Items), "only the nationwide policy survives")

	res, err = e.Recommend(context.Background(), models.UserProfile{Age: 35, Location: "제주"}, 5)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Items)
}

func TestRecommend_EmptyCorpus(t *testing.T) {
	c, err := corpus.New(nil, nil)
	require.NoError(t, err)
	e := newTestEngine(t, c, Options{})

	_, err = e.Recommend(context.Background(), models.UserProfile{Age: 24}, 5)
	assert.ErrorIs(t, err, ErrCorpusUnavailable)
}

func TestNewEngine_NilCorpus(t *testing.T) {
	_, err := NewEngine(nil, nil, Options{})
	assert.ErrorIs(t, err, ErrCorpusUnavailable)
}

func TestRecommend_RejectsAgeOutOfRange(t *testing.T) {
	e := newTestEngine(t, scenarioCorpus(t), Options{})

	for _, age := range []int{0, 14, 40} {
		_, err := e.Recommend(context.Background(), models.UserProfile{Age: age}, 5)
		assert.ErrorIs(t, err, ErrInvalidProfile, "age %d", age)
	}
}

func TestRecommend_EligibilityInvariants(t *testing.T) {
	records := make([]*models.PolicyRecord, 0, 40)
	regions := []string{"서울", "부산", "전국", "대구"}
	for i := 0; i < 40; i++ {
		var r *models.AgeRange
		if i%3 != 0 {
			r = ages(15+i%10, 25+i%15)
		}
		records = append(records, newPolicy(fmt.Sprintf("p%02d", i), models.CategoryJob, regions[i%len(regions)], r))
	}
	c, err := corpus.New(records, nil)
	require.NoError(t, err)
	e := newTestEngine(t, c, Options{Seed: 3})

	for age := models.MinUserAge; age <= models.MaxUserAge; age++ {
		res, err := e.Recommend(context.Background(), models.UserProfile{Age: age, Location: "서울"}, 5)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.TotalReturned, 5)
		for _, item := range res.Items {
			p, ok := c.Get(item.ID)
			require.True(t, ok)
			if p.AgeRange != nil {
				assert.True(t, p.AgeRange.Contains(age), "%s for age %d", p.ID, age)
			}
			assert.True(t, p.SupervisingRegion == "서울" || p.SupervisingRegion == "전국", p.ID)
		}
	}
}

func TestRecommend_CacheIdempotent(t *testing.T) {
	records := make([]*models.PolicyRecord, 0, 25)
	for i := 0; i < 25; i++ {
		records = append(records, newPolicy(fmt.Sprintf("p%02d", i), models.CategoryJob, "전국", nil))
	}
	c, err := corpus.New(records, nil)
	require.NoError(t, err)
	e := newTestEngine(t, c, Options{})

	profile := models.UserProfile{Age: 24, Interests: []string{"취업", "창업"}}
	first, err := e.Recommend(context.Background(), profile, 3)
	require.NoError(t, err)

	reordered := models.UserProfile{Age: 24, Interests: []string{"창업", "취업"}}
	for i := 0; i < 10; i++ {
		again, err := e.Recommend(context.Background(), reordered, 3)
		require.NoError(t, err)
		assert.True(t, again.Cached)

		a, _ := json.Marshal(first.Items)
		b, _ := json.Marshal(again.Items)
		assert.Equal(t, string(a), string(b))
	}

	stats := e.Cache().Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, int64(10), stats.Hits)
}

func TestRecommend_ClearCacheRecomputes(t *testing.T) {
	e := newTestEngine(t, scenarioCorpus(t), Options{})
	profile := models.UserProfile{Age: 24}

	_, err := e.Recommend(context.Background(), profile, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, e.ClearCache())

	res, err := e.Recommend(context.Background(), profile, 2)
	require.NoError(t, err)
	assert.False(t, res.Cached)
}

func TestRecommend_CacheHalfEviction(t *testing.T) {
	e := newTestEngine(t, scenarioCorpus(t), Options{MaxCacheSize: 4})

	for k := 1; k <= 5; k++ {
		_, err := e.Recommend(context.Background(), models.UserProfile{Age: 24}, k)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, e.Cache().Len())
	assert.Equal(t, int64(2), e.Cache().Stats().Evictions)
}

func TestRecommend_EmbeddingModeEncodeFailure(t *testing.T) {
	c, err := corpus.New(
		[]*models.PolicyRecord{newPolicy("job", models.CategoryJob, "전국", nil)},
		[][]float32{{1, 0}},
	)
	require.NoError(t, err)

	e, err := NewEngine(c, &staticEmbedder{err: errProviderDown}, Options{})
	require.NoError(t, err)
	assert.Equal(t, models.ModeEmbedding, e.Mode())

	_, err = e.Recommend(context.Background(), models.UserProfile{Age: 24}, 3)
	assert.ErrorIs(t, err, ErrEncodeFailed)
	assert.Equal(t, 0, e.Cache().Len(), "failures are not cached")
}

func TestRecommend_EmbeddingModeRanksBySimilarity(t *testing.T) {
	records := []*models.PolicyRecord{
		newPolicy("far", models.CategoryOther, "전국", nil),
		newPolicy("near", models.CategoryOther, "전국", nil),
		newPolicy("boosted", models.CategoryHousing, "전국", nil),
	}
	c, err := corpus.New(records, [][]float32{{0, 1}, {1, 0.1}, {1, 0.5}})
	require.NoError(t, err)

	e, err := NewEngine(c, &staticEmbedder{vec: []float32{1, 0}}, Options{})
	require.NoError(t, err)

	res, err := e.Recommend(context.Background(), models.UserProfile{Age: 24, Interests: []string{"월세"}}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"boosted", "near", "far"}, ids(res.Items))
}

func TestRecommend_ConcurrentIdenticalRequestsConverge(t *testing.T) {
	records := make([]*models.PolicyRecord, 0, 30)
	for i := 0; i < 30; i++ {
		records = append(records, newPolicy(fmt.Sprintf("p%02d", i), models.CategoryJob, "전국", nil))
	}
	c, err := corpus.New(records, nil)
	require.NoError(t, err)
	e := newTestEngine(t, c, Options{})

	const workers = 16
	results := make([][]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := e.Recommend(context.Background(), models.UserProfile{Age: 24}, 3)
			assert.NoError(t, err)
			results[i] = ids(res.Items)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Equal(t, results[0], results[i])
	}
}
