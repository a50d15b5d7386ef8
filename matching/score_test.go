package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreJobMatchPartialRatios(t *testing.T) {
	// round(((60/80)*40 + (1/2)*30) / 70 * 100) = round(45/70*100) = 64
	candidate := Candidate{AcademicScore: 60, WorkExperience: 1}
	job := JobRequirements{MinAcademicScore: 80, MinWorkExperience: 2}

	assert.Equal(t, 64, ScoreJobMatch(candidate, job))
}

func TestScoreJobMatchFullMatchIsHundred(t *testing.T) {
	candidate := Candidate{
		AcademicScore:  85,
		WorkExperience: 3,
		Certificates:   []string{"AWS Certified", "First Aid"},
		Skills:         []string{"Go", "SQL"},
	}
	job := JobRequirements{
		MinAcademicScore:     80,
		MinWorkExperience:    2,
		RequiredCertificates: []string{"aws certified"},
		RequiredSkills:       []string{"go", "sql"},
	}

	assert.Equal(t, 100, ScoreJobMatch(candidate, job))
}

func TestScoreJobMatchCertificateAndSkillFractions(t *testing.T) {
	candidate := Candidate{
		Certificates: []string{"First Aid"},
		Skills:       []string{"Go"},
	}
	job := JobRequirements{
		RequiredCertificates: []string{"First Aid", "Forklift"},
		RequiredSkills:       []string{"Go", "SQL", "Docker", "Kubernetes"},
	}

	// (20*1/2 + 10*1/4) / 30 * 100 = 41.66 -> 42
	assert.Equal(t, 42, ScoreJobMatch(candidate, job))
}

func TestScoreJobMatchStaysWithinBounds(t *testing.T) {
	candidates := []Candidate{
		{},
		{AcademicScore: 100, WorkExperience: 50, HasTranscript: true},
		{AcademicScore: 1},
	}
	jobs := []JobRequirements{
		{},
		{MinAcademicScore: 90, MinWorkExperience: 10},
		{RequiredSkills: []string{"Go"}},
	}

	for _, candidate := range candidates {
		for _, job := range jobs {
			score := ScoreJobMatch(candidate, job)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestScoreJobMatchFallbackTiers(t *testing.T) {
	job := JobRequirements{} // no weighted requirement at all

	tests := []struct {
		name      string
		candidate Candidate
		want      int
	}{
		{"transcript, score and experience", Candidate{HasTranscript: true, AcademicScore: 75, WorkExperience: 2}, 80},
		{"transcript and score", Candidate{HasTranscript: true, AcademicScore: 75}, 70},
		{"transcript only", Candidate{HasTranscript: true, AcademicScore: 40}, 60},
		{"nothing", Candidate{}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreJobMatch(tt.candidate, job))
		})
	}
}

func TestInterviewReady(t *testing.T) {
	assert.False(t, InterviewReady(69))
	assert.True(t, InterviewReady(70))
	assert.True(t, InterviewReady(100))
}
