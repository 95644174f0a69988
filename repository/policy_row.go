package repository

import (
	"fmt"
	"strings"
	"time"

	"youth_policy_ai/models"
)

// policyRow 파일과 DB 공통의 원시 정책 레코드
type policyRow struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	CategoryLabel     string   `json:"category_label"`
	Description       string   `json:"description"`
	SupervisingRegion string   `json:"supervising_region"`
	AgeMin            *int     `json:"age_min"`
	AgeMax            *int     `json:"age_max"`
	PeriodKind        string   `json:"period_kind"`
	ApplicationEnd    string   `json:"application_end"` // YYYYMMDD 또는 YYYY-MM-DD
	ApplicationURL    string   `json:"application_url"`
	Requirements      []string `json:"requirements"`
	SaveCount         int      `json:"save_count"`
	SupportContent    string   `json:"support_content"`
	Keywords          string   `json:"keywords"`
	MinorCategory     string   `json:"minor_category"`
}

var dateLayouts = []string{"20060102", "2006-01-02"}

// toPolicyRecord 원시 레코드를 정규화된 PolicyRecord로 변환
func (r policyRow) toPolicyRecord() (*models.PolicyRecord, error) {
	p := &models.PolicyRecord{
		ID:                strings.TrimSpace(r.ID),
		Title:             strings.TrimSpace(r.Title),
		CategoryLabel:     strings.TrimSpace(r.CategoryLabel),
		Description:       strings.TrimSpace(r.Description),
		SupervisingRegion: strings.TrimSpace(r.SupervisingRegion),
		PeriodKind:        models.PeriodKind(strings.TrimSpace(r.PeriodKind)),
		ApplicationURL:    strings.TrimSpace(r.ApplicationURL),
		SaveCount:         r.SaveCount,
		SupportContent:    r.SupportContent,
		Keywords:          r.Keywords,
		MinorCategory:     r.MinorCategory,
	}

	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = p.CategoryLabel
	}
	p.Category = models.ParseCategory(category)

	if p.PeriodKind == "" {
		p.PeriodKind = models.PeriodOngoing
	}

	switch {
	case r.AgeMin != nil && r.AgeMax != nil:
		p.AgeRange = &models.AgeRange{Min: *r.AgeMin, Max: *r.AgeMax}
	case r.AgeMin != nil || r.AgeMax != nil:
		return nil, fmt.Errorf("policy %s: age bounds must be given together", p.ID)
	}

	if end := strings.TrimSpace(r.ApplicationEnd); end != "" {
		t, err := parseDate(end)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", p.ID, err)
		}
		p.ApplicationEnd = &t
	}

	for _, req := range r.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			p.Requirements = append(p.Requirements, req)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid application end date %q", s)
}
