package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"youth_policy_ai/db"
	"youth_policy_ai/logger"
	"youth_policy_ai/models"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const policyColumns = `id, title, category, category_label, description, supervising_region,
	age_min, age_max, period_kind, application_end, application_url, requirements,
	save_count, support_content, keywords, minor_category`

// LoadPoliciesFromMySQL 정책 테이블 전체를 id 순으로 읽는다
func LoadPoliciesFromMySQL(ctx context.Context, table string) ([]*models.PolicyRecord, error) {
	if db.DB == nil {
		return nil, fmt.Errorf("mysql is not initialized")
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid policy table name %q", table)
	}

	query := fmt.Sprintf("SELECT %s FROM `%s` ORDER BY id", policyColumns, table)
	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query policies: %w", err)
	}
	defer rows.Close()

	var policies []*models.PolicyRecord
	for rows.Next() {
		var (
			row                                     policyRow
			category, label, description, region    sql.NullString
			ageMin, ageMax, saves                   sql.NullInt64
			periodKind, end, url, requirements      sql.NullString
			supportContent, keywords, minorCategory sql.NullString
		)
		if err := rows.Scan(&row.ID, &row.Title, &category, &label, &description, &region,
			&ageMin, &ageMax, &periodKind, &end, &url, &requirements,
			&saves, &supportContent, &keywords, &minorCategory); err != nil {
			return nil, fmt.Errorf("scan policy: %w", err)
		}

		row.Category = category.String
		row.CategoryLabel = label.String
		row.Description = description.String
		row.SupervisingRegion = region.String
		row.AgeMin = nullableInt(ageMin)
		row.AgeMax = nullableInt(ageMax)
		row.PeriodKind = periodKind.String
		row.ApplicationEnd = end.String
		row.ApplicationURL = url.String
		row.SaveCount = int(saves.Int64)
		row.SupportContent = supportContent.String
		row.Keywords = keywords.String
		row.MinorCategory = minorCategory.String
		row.Requirements, err = parseRequirements(requirements.String)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", row.ID, err)
		}

		p, err := row.toPolicyRecord()
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate policies: %w", err)
	}

	logger.Info("Policies loaded from MySQL", "table", table, "count", len(policies))
	return policies, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// parseRequirements 요건 컬럼은 JSON 배열 또는 줄바꿈 구분 텍스트를 허용한다
func parseRequirements(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, fmt.Errorf("parse requirements: %w", err)
		}
		return out, nil
	}
	return strings.Split(raw, "\n"), nil
}
