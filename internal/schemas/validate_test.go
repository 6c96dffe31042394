package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileValid(t *testing.T) {
	data := []byte(`{
		"name": "Jane Doe",
		"title": "Backend Engineer",
		"email": "jane@example.com",
		"links": {"github": "https://github.com/jane"},
		"skills": ["Go", "PostgreSQL"],
		"experience": [
			{
				"role": "Backend Engineer",
				"company": "Acme",
				"start": "2021",
				"end": "Present",
				"projects": [{"title": "Checkout Service"}]
			}
		],
		"projects": [{"title": "Data Pipeline Rework"}],
		"education": [{"degree": "BS CS", "school": "State University", "year": "2019"}],
		"certifications": ["AWS SAA"],
		"achievements": ["Hackathon winner"]
	}`)

	assert.NoError(t, ValidateProfile(data))
}

func TestValidateProfileMinimal(t *testing.T) {
	assert.NoError(t, ValidateProfile([]byte(`{"name": "Jane", "experience": []}`)))
}

func TestValidateProfileInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Missing name", `{"experience": []}`},
		{"Missing experience", `{"name": "Jane"}`},
		{"Empty name", `{"name": "", "experience": []}`},
		{"Experience entry missing company", `{"name": "Jane", "experience": [{"role": "Dev"}]}`},
		{"Project entry missing title", `{"name": "Jane", "experience": [], "projects": [{"description": "x"}]}`},
		{"Skills not strings", `{"name": "Jane", "experience": [], "skills": [1, 2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile([]byte(tt.data))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateProfileMalformedJSON(t *testing.T) {
	err := ValidateProfile([]byte(`{not json`))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
