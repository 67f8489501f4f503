package jobRepo

import (
	"smartscheduler/models"
)

// JobRepository defines methods for job data access.
type JobRepository interface {
	// GetByID retrieves a job by its unique ID. Returns nil when no job matches.
	GetByID(id string) (*models.Job, error)
}
