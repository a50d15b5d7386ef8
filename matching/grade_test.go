package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradePoints(t *testing.T) {
	assert.Equal(t, 90, GradePoints("A"))
	assert.Equal(t, 80, GradePoints("B"))
	assert.Equal(t, 70, GradePoints("C"))
	assert.Equal(t, 60, GradePoints("D"))
	assert.Equal(t, 50, GradePoints("E"))
	assert.Equal(t, 0, GradePoints("F"))
}

func TestGradePointsNormalizesInput(t *testing.T) {
	assert.Equal(t, 90, GradePoints("a"))
	assert.Equal(t, 80, GradePoints(" b "))
}

func TestGradePointsUnknownGradeIsZero(t *testing.T) {
	assert.Equal(t, 0, GradePoints("A+"))
	assert.Equal(t, 0, GradePoints(""))
	assert.Equal(t, 0, GradePoints("pass"))
}
