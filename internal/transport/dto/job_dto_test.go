package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
		wantErr  bool
	}{
		{
			name:     "JSON array",
			input:    `["Go", "PostgreSQL"]`,
			expected: StringList{"Go", "PostgreSQL"},
		},
		{
			name:     "Single free-text string",
			input:    `"Go\nPostgreSQL"`,
			expected: StringList{"Go\nPostgreSQL"},
		},
		{
			name:     "Empty array",
			input:    `[]`,
			expected: StringList{},
		},
		{
			name:    "Number is rejected",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCreateJobRequest_AcceptsBothRequirementShapes(t *testing.T) {
	asArray := `{"job_id":"JOB1001","title":"Backend Engineer","description":"d","job_type":"full-time","work_mode":"remote","requirements":["Go","Redis"]}`
	asText := `{"job_id":"JOB1001","title":"Backend Engineer","description":"d","job_type":"full-time","work_mode":"remote","requirements":"Go\nRedis"}`

	var fromArray, fromText CreateJobRequest
	require.NoError(t, json.Unmarshal([]byte(asArray), &fromArray))
	require.NoError(t, json.Unmarshal([]byte(asText), &fromText))

	assert.Equal(t, StringList{"Go", "Redis"}, fromArray.Requirements)
	// The free-text shape arrives as one chunk; the service splits it.
	assert.Equal(t, StringList{"Go\nRedis"}, fromText.Requirements)
}
