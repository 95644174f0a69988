package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_policy_ai/models"
	"youth_policy_ai/recommend"
)

const testPolicies = `[
  {"id": "P1", "title": "청년 취업 지원", "category": "일자리", "description": "취업", "supervising_region": "전국", "age_min": 19, "age_max": 34, "requirements": []},
  {"id": "P2", "title": "서울 월세 지원", "category": "주거", "description": "월세", "supervising_region": "서울", "age_min": 19, "age_max": 39, "requirements": []},
  {"id": "P3", "title": "부산 문화패스", "category": "복지문화", "description": "문화", "supervising_region": "부산", "age_min": 19, "age_max": 24, "requirements": []}
]`

func writeCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policies.json")
	require.NoError(t, os.WriteFile(path, []byte(testPolicies), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFingerprintCommand(t *testing.T) {
	out, err := execute(t, "fingerprint", "--age", "25", "--interests", "주거,취업", "--location", "서울", "-k", "3")
	require.NoError(t, err)

	want, err := recommend.Fingerprint(models.UserProfile{
		Age:       25,
		Interests: []string{"취업", "주거"},
		Location:  "서울",
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out))
}

func TestFingerprintCommand_RequiresAge(t *testing.T) {
	_, err := execute(t, "fingerprint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestRecommendCommand(t *testing.T) {
	path := writeCorpus(t)

	out, err := execute(t, "recommend", "--corpus", path, "--age", "25", "--location", "서울", "--interests", "취업", "-k", "2", "--seed", "7")
	require.NoError(t, err)

	var result models.RecommendationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Items, 2)
	assert.Equal(t, "P1", result.Items[0].ID)
	assert.Equal(t, "P2", result.Items[1].ID)
}

func TestValidateCommand(t *testing.T) {
	path := writeCorpus(t)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 policies OK")
	assert.Contains(t, out, "일자리=1")
}

func TestValidateCommand_RejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.json")
	dup := `[
  {"id": "P1", "title": "청년 취업 지원", "category": "일자리", "supervising_region": "전국"},
  {"id": "P1", "title": "청년 월세 지원", "category": "주거", "supervising_region": "전국"}
]`
	require.NoError(t, os.WriteFile(path, []byte(dup), 0o600))

	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "P1")
	assert.NotContains(t, out, "OK")
}
