package services

import (
	"fmt"
	"strings"

	"youth_policy_ai/models"
	"youth_policy_ai/utils"
)

// maxPromptSupportRunes 프롬프트에 넣을 지원내용 최대 길이
const maxPromptSupportRunes = 500

// buildUserContext 요약 요청의 사용자 정보 블록. 정보가 없으면 빈 문자열
func buildUserContext(req models.SummaryRequest) string {
	var b strings.Builder
	if req.UserAge != nil {
		fmt.Fprintf(&b, "나이: %d세\n", *req.UserAge)
	}
	if major := strings.TrimSpace(req.UserMajor); major != "" {
		fmt.Fprintf(&b, "전공: %s\n", major)
	}
	if interests := cleanInterests(req.UserInterests); len(interests) > 0 {
		fmt.Fprintf(&b, "관심사: %s\n", strings.Join(interests, ", "))
	}
	if b.Len() == 0 {
		return ""
	}
	return "사용자 정보:\n" + b.String()
}

// buildSummaryPrompt 정책 요약 프롬프트 구성
func buildSummaryPrompt(policy *models.PolicyRecord, req models.SummaryRequest) string {
	support := strings.TrimSpace(utils.TruncateRunes(policy.SupportContent, maxPromptSupportRunes))
	if support == "" || support == "nan" {
		support = "정보 없음"
	}

	prompt := fmt.Sprintf(`다음 정책 정보를 보고, 사용자에게 맞춤형 요약을 2-3문장으로 작성해주세요.

정책 정보:
- 제목: %s
- 설명: %s
- 카테고리: %s
- 지원 내용: %s

%s
요구사항:
1. 친근하고 격려하는 말투 사용
2. 사용자 정보가 있다면 그에 맞춰 설명
3. 정책의 핵심 혜택과 왜 이 사용자에게 적합한지 설명
4. 2-3문장으로 간결하게
5. 이모지와 마크다운은 사용하지 말 것`,
		policy.Title,
		policy.Description,
		policy.DisplayCategory(),
		support,
		buildUserContext(req))

	return prompt
}

func cleanInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		if interest = strings.TrimSpace(interest); interest != "" {
			out = append(out, interest)
		}
	}
	return out
}
