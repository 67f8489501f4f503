package models

import "time"

// AssignmentStatus is the lifecycle state of a job assignment.
type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "Pending"
	AssignmentAccepted   AssignmentStatus = "Accepted"
	AssignmentDeclined   AssignmentStatus = "Declined"
	AssignmentInProgress AssignmentStatus = "InProgress"
	AssignmentCompleted  AssignmentStatus = "Completed"
)

// ActiveAssignmentStatuses are the statuses that block a contractor's availability.
var ActiveAssignmentStatuses = []AssignmentStatus{
	AssignmentPending,
	AssignmentAccepted,
	AssignmentInProgress,
}

// IsActive reports whether the status counts against availability.
func (s AssignmentStatus) IsActive() bool {
	switch s {
	case AssignmentPending, AssignmentAccepted, AssignmentInProgress:
		return true
	}
	return false
}

// Assignment links a contractor to a job. JobDate denormalizes the job's
// desired date (YYYY-MM-DD) so a contractor's day can be queried directly.
type Assignment struct {
	ID           string           `bson:"id" json:"id"`
	JobID        string           `bson:"jobId" json:"jobId"`
	ContractorID string           `bson:"contractorId" json:"contractorId"`
	JobDate      string           `bson:"jobDate" json:"jobDate"`
	Status       AssignmentStatus `bson:"status" json:"status"`
	CreatedAt    time.Time        `bson:"createdAt" json:"createdAt,omitzero"`
}
