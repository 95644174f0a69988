package repository

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"youth_policy_ai/logger"
	"youth_policy_ai/models"
)

// LoadPoliciesFromFile 정규화된 정책 JSON 배열 파일을 읽는다
func LoadPoliciesFromFile(path string) ([]*models.PolicyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	return ParsePolicies(data)
}

// ParsePolicies 정책 JSON 배열을 해석한다. 잘못된 레코드가 하나라도 있으면 실패한다
func ParsePolicies(data []byte) ([]*models.PolicyRecord, error) {
	var rows []policyRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	policies := make([]*models.PolicyRecord, 0, len(rows))
	for i, row := range rows {
		p, err := row.toPolicyRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		policies = append(policies, p)
	}

	logger.Info("Policies parsed from file", "count", len(policies))
	return policies, nil
}
