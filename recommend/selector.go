package recommend

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"youth_policy_ai/models"
)

// CandidatePoolSize 최종 K 개를 뽑는 후보 풀 크기
const CandidatePoolSize = 10

// RandomSource 표본 추출 난수원 (*rand.Rand 가 만족)
type RandomSource interface {
	Intn(n int) int
}

// Selector 다양화 top-K 선택. 동시 호출에 안전하다
type Selector struct {
	mu  sync.Mutex
	rng RandomSource
}

// NewSelector 주어진 난수원 사용
func NewSelector(src RandomSource) *Selector {
	return &Selector{rng: src}
}

// NewSeededSelector seed 로 초기화한 math/rand 사용. 0 이면 현재 시각
func NewSeededSelector(seed int64) *Selector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSelector(rand.New(rand.NewSource(seed))) //nolint:gosec // 보안 용도 아님
}

// RankCandidates 점수 내림차순 정렬. 동점은 입력 순서 유지
func RankCandidates(candidates []models.ScoredCandidate) []models.ScoredCandidate {
	ranked := make([]models.ScoredCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Pool 정렬된 후보 중 상위 min(CandidatePoolSize, len) 개
func Pool(ranked []models.ScoredCandidate) []models.ScoredCandidate {
	if len(ranked) > CandidatePoolSize {
		return ranked[:CandidatePoolSize]
	}
	return ranked
}

// Select 후보를 정렬해 풀을 만들고 min(k, 풀 크기) 개를 비복원 추출한 뒤 점수순으로 반환
func (s *Selector) Select(candidates []models.ScoredCandidate, k int) []models.ScoredCandidate {
	if k <= 0 || len(candidates) == 0 {
		return []models.ScoredCandidate{}
	}

	pool := Pool(RankCandidates(candidates))
	if k >= len(pool) {
		out := make([]models.ScoredCandidate, len(pool))
		copy(out, pool)
		return out
	}

	picked := s.sampleIndices(len(pool), k)
	// 풀이 이미 정렬되어 있어 인덱스 오름차순이 곧 점수순
	sort.Ints(picked)

	out := make([]models.ScoredCandidate, 0, k)
	for _, idx := range picked {
		out = append(out, pool[idx])
	}
	return out
}

// sampleIndices 부분 Fisher-Yates 로 [0, n) 에서 서로 다른 인덱스 k 개 추출
func (s *Selector) sampleIndices(n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	s.mu.Lock()
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	s.mu.Unlock()

	return idx[:k]
}
