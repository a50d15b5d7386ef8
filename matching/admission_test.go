package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildAcceptPlanRejectsOtherAdmittedOffers(t *testing.T) {
	apps := []ApplicationRecord{
		{ID: 1, CourseID: 10, Status: "admitted"},
		{ID: 2, CourseID: 20, Status: "admitted"},
		{ID: 3, CourseID: 30, Status: "waitlisted"},
		{ID: 4, CourseID: 40, Status: "rejected"},
	}

	plan, err := BuildAcceptPlan(1, apps)
	assert.NoError(t, err)

	accepted := 0
	rejected := 0
	for _, m := range plan.Mutations {
		switch m.Status {
		case "accepted":
			accepted++
			assert.Equal(t, uint(1), m.ApplicationID)
		case "rejected":
			rejected++
			assert.Equal(t, uint(2), m.ApplicationID)
			assert.Equal(t, RejectedAfterAcceptReason, m.Reason)
		}
	}

	assert.Equal(t, 1, accepted, "exactly one application may end up accepted")
	assert.Equal(t, 1, rejected)
	assert.Equal(t, []uint{20}, plan.VacatedCourses)
}

func TestBuildAcceptPlanLeavesNonAdmittedUntouched(t *testing.T) {
	apps := []ApplicationRecord{
		{ID: 1, CourseID: 10, Status: "admitted"},
		{ID: 2, CourseID: 20, Status: "pending"},
		{ID: 3, CourseID: 30, Status: "waitlisted"},
	}

	plan, err := BuildAcceptPlan(1, apps)
	assert.NoError(t, err)
	assert.Len(t, plan.Mutations, 1)
	assert.Empty(t, plan.VacatedCourses)
}

func TestBuildAcceptPlanTargetMustBeAdmitted(t *testing.T) {
	apps := []ApplicationRecord{{ID: 1, CourseID: 10, Status: "pending"}}

	_, err := BuildAcceptPlan(1, apps)
	assert.ErrorIs(t, err, ErrNotAdmitted)
}

func TestBuildAcceptPlanUnknownTarget(t *testing.T) {
	apps := []ApplicationRecord{{ID: 1, CourseID: 10, Status: "admitted"}}

	_, err := BuildAcceptPlan(99, apps)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestBuildAcceptPlanRefusesSecondAccept(t *testing.T) {
	apps := []ApplicationRecord{
		{ID: 1, CourseID: 10, Status: "accepted"},
		{ID: 2, CourseID: 20, Status: "admitted"},
	}

	_, err := BuildAcceptPlan(2, apps)
	assert.ErrorIs(t, err, ErrAlreadyAccepted)
}

func TestPickWaitlistPromotionEarliestWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	candidates := []WaitlistCandidate{
		{ID: 5, AppliedAt: base.Add(48 * time.Hour)},
		{ID: 7, AppliedAt: base},
		{ID: 9, AppliedAt: base.Add(time.Hour)},
	}

	id, ok := PickWaitlistPromotion(candidates)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
}

func TestPickWaitlistPromotionEmptyList(t *testing.T) {
	_, ok := PickWaitlistPromotion(nil)
	assert.False(t, ok)
}
