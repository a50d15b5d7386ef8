package matching

import "strings"

// Requirements mirrors a course's subject requirements.
type Requirements struct {
	Subjects  []string
	MinGrades map[string]string
}

// SubjectGrade is one achieved subject grade on a student's record.
type SubjectGrade struct {
	Subject string
	Grade   string
}

// IsEligible reports whether a student's grades satisfy every required
// subject of a course. Subject names match case-insensitively. The check
// fails closed: missing requirements, a missing subject list or a missing
// minimum-grade map all mean not eligible. It never returns an error; an
// empty requirement list is vacuously eligible.
func IsEligible(req *Requirements, grades []SubjectGrade) bool {
	if req == nil || req.Subjects == nil || req.MinGrades == nil {
		return false
	}

	// Build a lookup from lowercase subject to achieved grade
	achieved := make(map[string]string, len(grades))
	for _, g := range grades {
		achieved[strings.ToLower(strings.TrimSpace(g.Subject))] = g.Grade
	}

	minGrades := make(map[string]string, len(req.MinGrades))
	for subject, grade := range req.MinGrades {
		minGrades[strings.ToLower(strings.TrimSpace(subject))] = grade
	}

	for _, required := range req.Subjects {
		key := strings.ToLower(strings.TrimSpace(required))

		grade, ok := achieved[key]
		if !ok {
			return false
		}

		minGrade, ok := minGrades[key]
		if !ok {
			// Required subject without a minimum grade: any recorded grade passes
			continue
		}

		if GradePoints(grade) < GradePoints(minGrade) {
			return false
		}
	}

	return true
}
