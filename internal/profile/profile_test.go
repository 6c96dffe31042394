package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileJSON = `{
	"name": "Jane Doe",
	"title": "Backend Engineer",
	"email": "jane@example.com",
	"phone": "+1 555 0100",
	"links": {"linkedin": "https://linkedin.com/in/jane", "github": "https://github.com/jane"},
	"skills": ["Go", "PostgreSQL", "Kafka"],
	"experience": [
		{
			"role": "Backend Engineer",
			"company": "Acme",
			"start": "2021",
			"end": "Present",
			"projects": [
				{"title": "Checkout Service"},
				{"title": "Billing Pipeline"}
			]
		}
	],
	"projects": [{"title": "Data Pipeline Rework"}],
	"education": [{"degree": "BS Computer Science", "school": "State University", "cgpa": "3.8", "year": "2019"}],
	"certifications": ["AWS Solutions Architect"],
	"achievements": ["Regional hackathon winner"]
}`

func TestParseValidProfile(t *testing.T) {
	p, err := Parse([]byte(validProfileJSON))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", p.Name)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Acme", p.Experience[0].Company)
	require.Len(t, p.Experience[0].Projects, 2)
	assert.Equal(t, "Billing Pipeline", p.Experience[0].Projects[1].Title)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kafka"}, p.Skills)
}

func TestParseInvalidProfile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Schema failure: missing name", `{"experience": []}`},
		{"Schema failure: role without company", `{"name": "Jane", "experience": [{"role": "Dev"}]}`},
		{"Field failure: bad email", `{"name": "Jane", "email": "not-an-email", "experience": []}`},
		{"Malformed JSON", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(validProfileJSON), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	p, err := Parse([]byte(validProfileJSON))
	require.NoError(t, err)

	assert.Equal(t, "backendengineer", p.Experience[0].RoleKey())
	assert.Equal(t, "checkoutservice", p.Experience[0].Projects[0].Key())
	assert.Equal(t, "datapipelinerework", p.Projects[0].Key())
}
