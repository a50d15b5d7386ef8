package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligibleMeetsAllRequirements(t *testing.T) {
	req := &Requirements{
		Subjects:  []string{"Math", "English"},
		MinGrades: map[string]string{"Math": "B", "English": "B"},
	}
	grades := []SubjectGrade{
		{Subject: "Math", Grade: "A"},
		{Subject: "English", Grade: "B"},
	}

	assert.True(t, IsEligible(req, grades))
}

func TestIsEligibleMissingSubject(t *testing.T) {
	req := &Requirements{
		Subjects:  []string{"Math", "Science"},
		MinGrades: map[string]string{"Math": "A", "Science": "C"},
	}
	grades := []SubjectGrade{
		{Subject: "Math", Grade: "A"},
		{Subject: "English", Grade: "B"},
	}

	assert.False(t, IsEligible(req, grades))
}

func TestIsEligibleGradeBelowMinimum(t *testing.T) {
	req := &Requirements{
		Subjects:  []string{"Math"},
		MinGrades: map[string]string{"Math": "B"},
	}
	grades := []SubjectGrade{{Subject: "Math", Grade: "C"}}

	assert.False(t, IsEligible(req, grades))
}

func TestIsEligibleSubjectNamesMatchCaseInsensitively(t *testing.T) {
	req := &Requirements{
		Subjects:  []string{"MATH"},
		MinGrades: map[string]string{"math": "C"},
	}
	grades := []SubjectGrade{{Subject: "Math", Grade: "B"}}

	assert.True(t, IsEligible(req, grades))
}

func TestIsEligibleFailsClosed(t *testing.T) {
	grades := []SubjectGrade{{Subject: "Math", Grade: "A"}}

	assert.False(t, IsEligible(nil, grades), "missing requirements")
	assert.False(t, IsEligible(&Requirements{MinGrades: map[string]string{}}, grades), "missing subject list")
	assert.False(t, IsEligible(&Requirements{Subjects: []string{"Math"}}, grades), "missing min grades")
}

func TestIsEligibleEmptyRequirementListIsVacuouslyEligible(t *testing.T) {
	req := &Requirements{Subjects: []string{}, MinGrades: map[string]string{}}

	assert.True(t, IsEligible(req, nil))
}

func TestIsEligibleRequiredSubjectWithoutMinGradePassesOnPresence(t *testing.T) {
	req := &Requirements{
		Subjects:  []string{"Math", "Art"},
		MinGrades: map[string]string{"Math": "C"},
	}
	grades := []SubjectGrade{
		{Subject: "Math", Grade: "B"},
		{Subject: "Art", Grade: "F"},
	}

	assert.True(t, IsEligible(req, grades))
}
