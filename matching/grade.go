package matching

import "strings"

// gradePoints is the fixed ordinal scale used by eligibility and admission
// logic. Unknown grades score zero.
var gradePoints = map[string]int{
	"A": 90,
	"B": 80,
	"C": 70,
	"D": 60,
	"E": 50,
	"F": 0,
}

// GradePoints converts a letter grade to its point value.
func GradePoints(grade string) int {
	return gradePoints[strings.ToUpper(strings.TrimSpace(grade))]
}
