package recommend

import (
	"context"
	"errors"

	"youth_policy_ai/models"
)

func newPolicy(id string, category models.Category, region string, ageRange *models.AgeRange) *models.PolicyRecord {
	return &models.PolicyRecord{
		ID:                id,
		Title:             "정책 " + id,
		Category:          category,
		SupervisingRegion: region,
		AgeRange:          ageRange,
		PeriodKind:        models.PeriodOngoing,
	}
}

func ages(lo, hi int) *models.AgeRange {
	return &models.AgeRange{Min: lo, Max: hi}
}

// staticEmbedder 모든 텍스트에 같은 벡터 반환
type staticEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (s *staticEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = s.vec
	}
	return out, nil
}

var errProviderDown = errors.New("provider down")

// recordingRandom 받은 상한을 기록하는 결정적 RandomSource
type recordingRandom struct {
	bounds []int
}

func (r *recordingRandom) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	return n - 1
}

func ids(items []models.PolicyPayload) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
