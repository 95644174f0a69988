package recommend

import (
	"fmt"
	"strings"

	"youth_policy_ai/models"
)

// SynthesizeQuery 임베딩 모드에서 사용할 자연어 질의 생성.
// 나이, 전공, 관심사, 지역 순서가 고정이라 정규화 결과가 같으면 문장도 같다
func SynthesizeQuery(profile models.UserProfile) string {
	p := profile.Normalize()

	clauses := []string{fmt.Sprintf("%d세 청년", p.Age)}
	if p.Major != "" {
		clauses = append(clauses, fmt.Sprintf("%s 전공", p.Major))
	}
	if len(p.Interests) > 0 {
		clauses = append(clauses, fmt.Sprintf("%s 분야에 관심", strings.Join(p.Interests, " ")))
	}
	if p.Location != "" {
		clauses = append(clauses, fmt.Sprintf("%s 지역 거주", p.Location))
	}

	return strings.Join(clauses, ", ")
}
