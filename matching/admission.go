package matching

import (
	"errors"
	"time"
)

// RejectedAfterAcceptReason is stamped on offers auto-rejected when the
// student accepts a different one.
const RejectedAfterAcceptReason = "Student accepted another offer"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotAdmitted         = errors.New("application is not an admitted offer")
	ErrAlreadyAccepted     = errors.New("student has already accepted an offer")
)

// ApplicationRecord is the slice of an application row the accept planner
// needs.
type ApplicationRecord struct {
	ID       uint
	CourseID uint
	Status   string
}

// StatusMutation is one record update of an accept plan.
type StatusMutation struct {
	ApplicationID uint
	Status        string
	Reason        string
}

// AcceptPlan is the full set of mutations that accepting one offer implies.
// The mutations must be committed atomically; the vacated courses are then
// candidates for waitlist promotion, which is best-effort and runs outside
// the commit.
type AcceptPlan struct {
	Mutations      []StatusMutation
	VacatedCourses []uint
}

// BuildAcceptPlan turns "student accepts offer targetID" into an explicit
// mutation list over all of the student's applications: the target becomes
// accepted, every other admitted offer becomes rejected, and each rejected
// offer vacates its course. Enforces the at-most-one-accepted invariant up
// front.
func BuildAcceptPlan(targetID uint, apps []ApplicationRecord) (AcceptPlan, error) {
	var target *ApplicationRecord
	for i := range apps {
		if apps[i].Status == "accepted" {
			return AcceptPlan{}, ErrAlreadyAccepted
		}
		if apps[i].ID == targetID {
			target = &apps[i]
		}
	}

	if target == nil {
		return AcceptPlan{}, ErrApplicationNotFound
	}
	if target.Status != "admitted" {
		return AcceptPlan{}, ErrNotAdmitted
	}

	plan := AcceptPlan{
		Mutations: []StatusMutation{
			{ApplicationID: target.ID, Status: "accepted"},
		},
	}

	for _, app := range apps {
		if app.ID == target.ID || app.Status != "admitted" {
			continue
		}
		plan.Mutations = append(plan.Mutations, StatusMutation{
			ApplicationID: app.ID,
			Status:        "rejected",
			Reason:        RejectedAfterAcceptReason,
		})
		plan.VacatedCourses = append(plan.VacatedCourses, app.CourseID)
	}

	return plan, nil
}

// WaitlistCandidate is a waitlisted application competing for a vacated seat.
type WaitlistCandidate struct {
	ID        uint
	AppliedAt time.Time
}

// PickWaitlistPromotion selects the earliest-submitted waitlisted candidate.
// Returns false when the waitlist is empty.
func PickWaitlistPromotion(candidates []WaitlistCandidate) (uint, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.AppliedAt.Before(best.AppliedAt) {
			best = c
		}
	}
	return best.ID, true
}
