package recommend

import (
	"strings"

	"youth_policy_ai/models"
)

// IsEligible 지역과 나이 조건을 모두 만족하는지
func IsEligible(policy *models.PolicyRecord, profile models.UserProfile) bool {
	return regionAllows(policy, profile) && ageAllows(policy, profile)
}

func regionAllows(policy *models.PolicyRecord, profile models.UserProfile) bool {
	if !profile.HasLocation() {
		return true
	}
	location := strings.TrimSpace(profile.Location)
	return strings.Contains(policy.SupervisingRegion, location) ||
		strings.Contains(policy.SupervisingRegion, models.NationwideRegion)
}

func ageAllows(policy *models.PolicyRecord, profile models.UserProfile) bool {
	if policy.AgeRange == nil {
		return true
	}
	return policy.AgeRange.Contains(profile.Age)
}

// FilterEligible 자격 정책만 코퍼스 순서대로 남긴다
func FilterEligible(policies []*models.PolicyRecord, profile models.UserProfile) []*models.PolicyRecord {
	out := make([]*models.PolicyRecord, 0, len(policies))
	for _, p := range policies {
		if IsEligible(p, profile) {
			out = append(out, p)
		}
	}
	return out
}
