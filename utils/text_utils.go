package utils

import (
	"strings"
	"unicode"
)

// TruncateRunes 문자 단위로 최대 n자까지 자르기
func TruncateRunes(text string, n int) string {
	runes := []rune(text)
	if n < 0 || len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// commonPunctuation 요약문에 남길 문장부호
var commonPunctuation = map[rune]bool{
	',': true, '.': true, '!': true, '?': true, ':': true, ';': true,
	'"': true, '\'': true, '(': true, ')': true, '[': true, ']': true,
	'-': true, '~': true, '%': true, '/': true, '·': true, '…': true,
	'“': true, '”': true, '‘': true, '’': true,
	' ': true, '\n': true,
}

// FilterSpecialSymbols 한글, 영문, 숫자, 일반 문장부호만 남기고 이모지 등 특수 기호를 제거
func FilterSpecialSymbols(text string) string {
	var result strings.Builder
	for _, r := range text {
		if unicode.Is(unicode.Hangul, r) ||
			(r >= 'A' && r <= 'Z') ||
			(r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') ||
			commonPunctuation[r] {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// RemoveMarkdown 제목(#), 강조(**, __), 목록 기호를 제거하고 빈 줄을 정리
func RemoveMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		for _, bullet := range []string{"- ", "* ", "• "} {
			trimmed = strings.TrimPrefix(trimmed, bullet)
		}
		trimmed = strings.ReplaceAll(trimmed, "**", "")
		trimmed = strings.ReplaceAll(trimmed, "__", "")
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return strings.Join(result, "\n")
}

// CleanLLMText LLM 출력에서 마크다운과 특수 기호를 걷어내고 공백을 정리
func CleanLLMText(text string) string {
	text = FilterSpecialSymbols(RemoveMarkdown(text))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
