package recommend

import (
	"strings"

	"youth_policy_ai/models"
)

// CategoryBoost 임베딩 모드에서 관심사가 정책 카테고리와 맞을 때 곱하는 가중치
const CategoryBoost = 1.3

// 키워드 모드 점수
const (
	KeywordBaseScore  = 0.1
	KeywordMatchScore = 0.8
)

// affinityRule 관심사 키워드와 정책 카테고리 연결
type affinityRule struct {
	category models.Category
	keywords []string
}

// affinityRules 두 점수 계산 방식이 함께 사용하는 표. 순서가 의미를 가진다:
// 관심사와 키워드가 겹치고 카테고리가 정책과 같은 첫 규칙이 가중치를 결정한다
var affinityRules = []affinityRule{
	{category: models.CategoryJob, keywords: []string{"취업", "창업", "일자리", "구직", "인턴"}},
	{category: models.CategoryEducation, keywords: []string{"장학금", "교육", "학자금", "자격증"}},
	{category: models.CategoryWelfareCulture, keywords: []string{"문화", "복지", "예술", "여가"}},
	{category: models.CategoryHousing, keywords: []string{"주거", "주택", "전세", "월세", "임대"}},
	{category: models.CategoryLivingFinance, keywords: []string{"대출", "금융", "자산", "저축", "적금"}},
}

// affinity 관심사 집합 하나에 대한 요청별 규칙 적중 상태
type affinity struct {
	triggered []bool // affinityRules 와 같은 인덱스
}

func newAffinity(interests []string) affinity {
	set := make(map[string]bool, len(interests))
	for _, interest := range interests {
		set[strings.ToLower(strings.TrimSpace(interest))] = true
	}

	a := affinity{triggered: make([]bool, len(affinityRules))}
	for i, rule := range affinityRules {
		for _, kw := range rule.keywords {
			if set[kw] {
				a.triggered[i] = true
				break
			}
		}
	}
	return a
}

// matches 해당 카테고리 정책에 적용되는 규칙이 있는지
func (a affinity) matches(category models.Category) bool {
	for i, rule := range affinityRules {
		if a.triggered[i] && rule.category == category {
			return true
		}
	}
	return false
}

// any 적중한 규칙이 하나라도 있는지
func (a affinity) any() bool {
	for _, t := range a.triggered {
		if t {
			return true
		}
	}
	return false
}
