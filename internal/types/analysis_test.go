package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillMap_Clamped(t *testing.T) {
	tests := []struct {
		name string
		in   SkillMap
		want SkillMap
	}{
		{
			name: "in-range values unchanged",
			in:   SkillMap{DSA: 70, SystemDesign: 55, Communication: 80},
			want: SkillMap{DSA: 70, SystemDesign: 55, Communication: 80},
		},
		{
			name: "over 100 clamped down",
			in:   SkillMap{DSA: 140, SystemDesign: 100, Communication: 101},
			want: SkillMap{DSA: 100, SystemDesign: 100, Communication: 100},
		},
		{
			name: "negative clamped to zero",
			in:   SkillMap{DSA: -5, SystemDesign: 0, Communication: -100},
			want: SkillMap{DSA: 0, SystemDesign: 0, Communication: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamped())
		})
	}
}

func TestResumeAnalysis_DecodeToleratesOutOfRangeSkillMap(t *testing.T) {
	// The upstream contract says 0-100 but the local code must tolerate
	// out-of-range values without failing the decode.
	jsonInput := `{
		"missingSkills": ["Kubernetes"],
		"followUpQuestions": ["Tell me about a production incident.", "Why this role?", "Biggest project?"],
		"skillMap": {"dsa": 250, "systemDesign": -10, "communication": 60}
	}`

	var analysis ResumeAnalysis
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &analysis))
	assert.Equal(t, 250, analysis.SkillMap.DSA)

	clamped := analysis.SkillMap.Clamped()
	assert.Equal(t, 100, clamped.DSA)
	assert.Equal(t, 0, clamped.SystemDesign)
	assert.Equal(t, 60, clamped.Communication)
}

func TestResumeInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   ResumeInput
		wantErr bool
	}{
		{
			name:    "plain text resume",
			input:   ResumeInput{Text: "5 years of Go backend work"},
			wantErr: false,
		},
		{
			name:    "document with media type",
			input:   ResumeInput{Data: []byte{0x25, 0x50, 0x44, 0x46}, MIMEType: "application/pdf"},
			wantErr: false,
		},
		{
			name:    "document without media type rejected",
			input:   ResumeInput{Data: []byte{0x01}},
			wantErr: true,
		},
		{
			name:    "empty input rejected",
			input:   ResumeInput{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResumeInput_Summary(t *testing.T) {
	long := strings.Repeat("a", 1500)
	input := ResumeInput{Text: long}
	assert.Len(t, input.Summary(1000), 1000)

	short := ResumeInput{Text: "short resume"}
	assert.Equal(t, "short resume", short.Summary(1000))
}
