package matching

import (
	"math"
	"strings"
)

// Weights of the match-score components. A component only counts when the job
// actually specifies that requirement.
const (
	weightAcademic     = 40.0
	weightExperience   = 30.0
	weightCertificates = 20.0
	weightSkills       = 10.0
)

// InterviewReadyScore is the score at which a candidate is flagged
// interview-ready.
const InterviewReadyScore = 70

// Candidate is the slice of a student profile the scorer looks at.
type Candidate struct {
	AcademicScore  float64
	WorkExperience float64
	Certificates   []string
	Skills         []string
	HasTranscript  bool
}

// JobRequirements are the weighted requirement fields of a job posting. Zero
// thresholds and empty lists mean "not required".
type JobRequirements struct {
	MinAcademicScore     float64
	MinWorkExperience    float64
	RequiredCertificates []string
	RequiredSkills       []string
}

// ScoreJobMatch computes a 0-100 compatibility score between a candidate and
// a job posting. Each specified requirement contributes its weight, reduced
// to a ratio when the candidate falls short. The accumulated score is scaled
// by the weights actually applied, so underspecified postings do not dilute
// the result. A posting with no weighted requirements at all falls back to a
// coarse transcript/score/experience tier so every candidate still gets a
// deterministic score.
func ScoreJobMatch(candidate Candidate, job JobRequirements) int {
	applied := 0.0
	total := 0.0

	if job.MinAcademicScore > 0 {
		applied += weightAcademic
		if candidate.AcademicScore >= job.MinAcademicScore {
			total += weightAcademic
		} else if candidate.AcademicScore > 0 {
			total += weightAcademic * (candidate.AcademicScore / job.MinAcademicScore)
		}
	}

	if job.MinWorkExperience > 0 {
		applied += weightExperience
		if candidate.WorkExperience >= job.MinWorkExperience {
			total += weightExperience
		} else if candidate.WorkExperience > 0 {
			total += weightExperience * (candidate.WorkExperience / job.MinWorkExperience)
		}
	}

	if len(job.RequiredCertificates) > 0 {
		applied += weightCertificates
		matched := overlapCount(candidate.Certificates, job.RequiredCertificates)
		total += weightCertificates * float64(matched) / float64(len(job.RequiredCertificates))
	}

	if len(job.RequiredSkills) > 0 {
		applied += weightSkills
		matched := overlapCount(candidate.Skills, job.RequiredSkills)
		total += weightSkills * float64(matched) / float64(len(job.RequiredSkills))
	}

	// Underspecified posting: no weighted requirement at all
	if applied == 0 {
		return fallbackScore(candidate)
	}

	score := int(math.Round(total / applied * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// InterviewReady reports whether a score qualifies the candidate for an
// interview.
func InterviewReady(score int) bool {
	return score >= InterviewReadyScore
}

// fallbackScore grades a candidate against a posting that specifies none of
// the weighted requirements.
func fallbackScore(candidate Candidate) int {
	switch {
	case candidate.HasTranscript && candidate.AcademicScore >= 60 && candidate.WorkExperience >= 1:
		return 80
	case candidate.HasTranscript && candidate.AcademicScore >= 60:
		return 70
	case candidate.HasTranscript:
		return 60
	default:
		return 50
	}
}

// overlapCount counts how many required entries the candidate holds,
// comparing case-insensitively.
func overlapCount(have, required []string) int {
	owned := make(map[string]bool, len(have))
	for _, h := range have {
		owned[strings.ToLower(strings.TrimSpace(h))] = true
	}

	count := 0
	for _, r := range required {
		if owned[strings.ToLower(strings.TrimSpace(r))] {
			count++
		}
	}
	return count
}
