package contractorRepo

import (
	"smartscheduler/models"
)

// ContractorRepository defines methods for contractor data access.
type ContractorRepository interface {
	// GetByID retrieves a contractor by its unique ID. Returns nil when no
	// contractor matches.
	GetByID(id string) (*models.Contractor, error)
	// GetActiveIDs returns the IDs of all active contractors.
	GetActiveIDs() ([]string, error)
	// GetDispatcherList returns the contractor IDs on a dispatcher's curated list.
	GetDispatcherList(dispatcherID string) ([]string, error)
}
