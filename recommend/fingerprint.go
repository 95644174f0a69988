package recommend

import (
	"fmt"

	"github.com/goccy/go-json"

	"youth_policy_ai/models"
	"youth_policy_ai/utils"
)

// fingerprintKey 캐시 키로 해시하는 정규형. 필드는 알파벳순이며 전공/지역이 없으면 null
type fingerprintKey struct {
	Age       int      `json:"age"`
	Interests []string `json:"interests"`
	Location  *string  `json:"location"`
	Major     *string  `json:"major"`
	TopK      int      `json:"top_k"`
}

// Fingerprint 프로필과 K 의 캐시 키. 관심사 순서나 중복, 앞뒤 공백만 다른 프로필은
// 같은 키를 가진다. 사용자 ID 는 포함하지 않는다
func Fingerprint(profile models.UserProfile, k int) (string, error) {
	p := profile.Normalize()

	key := fingerprintKey{
		Age:       p.Age,
		Interests: p.Interests,
		Location:  optional(p.Location),
		Major:     optional(p.Major),
		TopK:      k,
	}
	raw, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("marshal fingerprint: %w", err)
	}
	return utils.CalculateMD5(string(raw)), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
