package models

// ScoringMode 점수 계산 방식. 코퍼스 로드 시점에 한 번 결정된다.
type ScoringMode string

const (
	ModeEmbedding ScoringMode = "embedding"
	ModeKeyword   ScoringMode = "keyword"
)

// ScoredCandidate 추천 한 번 동안의 자격 정책과 점수
type ScoredCandidate struct {
	Policy *PolicyRecord
	Score  float64
}

// PolicyPayload 추천 응답의 정책 항목 (온통청년 API 필드명 사용)
type PolicyPayload struct {
	ID                  string   `json:"id"`
	PlcyNm              string   `json:"plcyNm"`
	BscPlanPlcyWayNoNm  string   `json:"bscPlanPlcyWayNoNm"`
	PlcyExplnCn         string   `json:"plcyExplnCn,omitempty"`
	RgtrupInstCdNm      string   `json:"rgtrupInstCdNm,omitempty"`
	AplyPrdSeCd         string   `json:"aplyPrdSeCd,omitempty"`
	AplyPrdEndYmd       *string  `json:"aplyPrdEndYmd"`
	ApplicationURL      string   `json:"applicationUrl,omitempty"`
	Requirements        []string `json:"requirements"`
	Saves               int      `json:"saves"`
	IsBookmarked        bool     `json:"isBookmarked"`
	RecommendationScore float64  `json:"recommendationScore"`
}

// defaultRequirement 요건 정보가 없는 정책에 표시하는 기본 문구
const defaultRequirement = "청년 대상"

// NewPolicyPayload 정책 레코드와 점수로 응답 항목 생성
func NewPolicyPayload(p *PolicyRecord, score float64) PolicyPayload {
	requirements := make([]string, 0, len(p.Requirements)+1)
	requirements = append(requirements, p.Requirements...)
	if len(requirements) == 0 {
		requirements = append(requirements, defaultRequirement)
	}

	var endYmd *string
	if p.ApplicationEnd != nil {
		s := p.ApplicationEnd.Format("20060102")
		endYmd = &s
	}

	return PolicyPayload{
		ID:                  p.ID,
		PlcyNm:              p.Title,
		BscPlanPlcyWayNoNm:  p.DisplayCategory(),
		PlcyExplnCn:         p.Description,
		RgtrupInstCdNm:      p.SupervisingRegion,
		AplyPrdSeCd:         string(p.PeriodKind),
		AplyPrdEndYmd:       endYmd,
		ApplicationURL:      p.ApplicationURL,
		Requirements:        requirements,
		Saves:               p.SaveCount,
		IsBookmarked:        false,
		RecommendationScore: score,
	}
}

// RecommendationResult 추천 엔진의 결과
type RecommendationResult struct {
	Success       bool            `json:"success"`
	Items         []PolicyPayload `json:"items"`
	TotalReturned int             `json:"total_returned"`
	Cached        bool            `json:"cached"`
	Mode          ScoringMode     `json:"mode"`
}
