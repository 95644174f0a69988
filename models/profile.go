package models

import (
	"sort"
	"strings"
)

// 사용자 나이 허용 범위
const (
	MinUserAge = 15
	MaxUserAge = 39
)

// UserProfile 추천 요청에 사용되는 사용자 프로필
type UserProfile struct {
	UserID    string   `json:"user_id" example:"user_001"`
	Age       int      `json:"age" validate:"required,gte=15,lte=39" example:"24"`
	Major     string   `json:"major,omitempty" validate:"max=100" example:"컴퓨터공학"`
	Interests []string `json:"interests" validate:"max=20,dive,max=50" example:"취업,창업"`
	Location  string   `json:"location,omitempty" validate:"max=50" example:"서울"`
}

// Normalize 필드 공백을 자르고 관심사를 중복 제거, 정렬한 사본.
// 관심사 순서는 의미가 없으므로 모든 소비자는 정규화된 값을 사용한다
func (p UserProfile) Normalize() UserProfile {
	out := UserProfile{
		UserID:   strings.TrimSpace(p.UserID),
		Age:      p.Age,
		Major:    strings.TrimSpace(p.Major),
		Location: strings.TrimSpace(p.Location),
	}

	seen := make(map[string]bool, len(p.Interests))
	interests := make([]string, 0, len(p.Interests))
	for _, interest := range p.Interests {
		interest = strings.TrimSpace(interest)
		if interest == "" || seen[interest] {
			continue
		}
		seen[interest] = true
		interests = append(interests, interest)
	}
	sort.Strings(interests)
	out.Interests = interests

	return out
}

// HasLocation 지역 조건이 지정되었는지 여부
func (p UserProfile) HasLocation() bool {
	return strings.TrimSpace(p.Location) != ""
}
