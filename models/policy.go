package models

import (
	"fmt"
	"strings"
	"time"
)

// Category 정책 대분류
type Category string

const (
	CategoryJob            Category = "일자리"
	CategoryEducation      Category = "교육"
	CategoryWelfareCulture Category = "복지문화"
	CategoryHousing        Category = "주거"
	CategoryLivingFinance  Category = "생활금융"
	CategoryOther          Category = "기타"
)

// AllCategories 고정 카테고리 목록
func AllCategories() []Category {
	return []Category{
		CategoryJob,
		CategoryEducation,
		CategoryWelfareCulture,
		CategoryHousing,
		CategoryLivingFinance,
		CategoryOther,
	}
}

// categoryAliases 원천 카테고리 라벨(대분류명과 이전 소분류명)을 고정 카테고리로 매핑
var categoryAliases = map[string]Category{
	"일자리":  CategoryJob,
	"취업지원": CategoryJob,
	"창업지원": CategoryJob,
	"교육":   CategoryEducation,
	"장학금":  CategoryEducation,
	"복지문화": CategoryWelfareCulture,
	"생활복지": CategoryWelfareCulture,
	"문화":   CategoryWelfareCulture,
	"주거":   CategoryHousing,
	"주거지원": CategoryHousing,
	"생활금융": CategoryLivingFinance,
	"금융":   CategoryLivingFinance,
}

// ParseCategory 원천 라벨 정규화. 모르는 라벨은 CategoryOther
func ParseCategory(label string) Category {
	if c, ok := categoryAliases[strings.TrimSpace(label)]; ok {
		return c
	}
	return CategoryOther
}

// NationwideRegion 전국 단위 정책을 나타내는 와일드카드
const NationwideRegion = "전국"

// PeriodKind 신청기간 구분
type PeriodKind string

const (
	PeriodOngoing     PeriodKind = "상시"
	PeriodFixedWindow PeriodKind = "기간"
)

// AgeRange 양 끝 포함 나이 범위. 정책은 두 값을 모두 갖거나 모두 갖지 않는다
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains age 가 [Min, Max] 안에 있는지
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// PolicyRecord 정규화된 청년정책 레코드. 로드 이후 변경되지 않는다
type PolicyRecord struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Category          Category   `json:"category"`
	CategoryLabel     string     `json:"category_label"`
	Description       string     `json:"description"`
	SupervisingRegion string     `json:"supervising_region"`
	AgeRange          *AgeRange  `json:"age_range,omitempty"`
	PeriodKind        PeriodKind `json:"period_kind"`
	ApplicationEnd    *time.Time `json:"application_end,omitempty"`
	ApplicationURL    string     `json:"application_url"`
	Requirements      []string   `json:"requirements"`
	SaveCount         int        `json:"save_count"`

	// 점수 계산 전용 필드
	SupportContent string `json:"support_content,omitempty"`
	Keywords       string `json:"keywords,omitempty"`
	MinorCategory  string `json:"minor_category,omitempty"`
}

// Validate 레코드 불변 조건 검사
func (p *PolicyRecord) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("policy id is empty")
	}
	if p.AgeRange != nil && p.AgeRange.Min > p.AgeRange.Max {
		return fmt.Errorf("policy %s: age_min %d greater than age_max %d", p.ID, p.AgeRange.Min, p.AgeRange.Max)
	}
	if p.SaveCount < 0 {
		return fmt.Errorf("policy %s: negative save count %d", p.ID, p.SaveCount)
	}
	switch p.PeriodKind {
	case PeriodOngoing, PeriodFixedWindow:
	default:
		return fmt.Errorf("policy %s: unknown application period kind %q", p.ID, p.PeriodKind)
	}
	return nil
}

// DisplayCategory 원천 라벨이 있으면 라벨, 없으면 정규화 카테고리
func (p *PolicyRecord) DisplayCategory() string {
	if p.CategoryLabel != "" {
		return p.CategoryLabel
	}
	return string(p.Category)
}

// maxSupportContentRunes 임베딩 텍스트에 포함할 지원내용 최대 길이
const maxSupportContentRunes = 200

// EmbeddingText 임베딩에 사용할 정책 텍스트
func (p *PolicyRecord) EmbeddingText() string {
	support := []rune(p.SupportContent)
	if len(support) > maxSupportContentRunes {
		support = support[:maxSupportContentRunes]
	}

	parts := []string{
		p.Title,
		p.Description,
		p.DisplayCategory(),
		p.MinorCategory,
		string(support),
		p.Keywords,
	}

	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "nan" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, " ")
}
