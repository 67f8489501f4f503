package assignmentRepo

import (
	"smartscheduler/models"
)

// AssignmentRepository defines methods for assignment data access.
type AssignmentRepository interface {
	// GetActiveForContractorOnDate returns the contractor's assignments whose
	// job falls on the given date (YYYY-MM-DD), filtered to the statuses that
	// block availability (Pending, Accepted, InProgress).
	GetActiveForContractorOnDate(contractorID, date string) ([]models.Assignment, error)
}
