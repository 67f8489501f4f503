package recommendation

import (
	"context"
	"fmt"
	"time"

	"smartscheduler/models"
)

// ==========================
// In-memory test doubles
// ==========================

type fakeContractorRepo struct {
	contractors map[string]*models.Contractor
	activeIDs   []string
	lists       map[string][]string
	failOn      map[string]bool
}

func newFakeContractorRepo(contractors ...*models.Contractor) *fakeContractorRepo {
	repo := &fakeContractorRepo{
		contractors: make(map[string]*models.Contractor),
		lists:       make(map[string][]string),
		failOn:      make(map[string]bool),
	}
	for _, c := range contractors {
		repo.contractors[c.ID] = c
		if c.Active {
			repo.activeIDs = append(repo.activeIDs, c.ID)
		}
	}
	return repo
}

func (r *fakeContractorRepo) GetByID(id string) (*models.Contractor, error) {
	if r.failOn[id] {
		return nil, fmt.Errorf("contractor store unavailable")
	}
	return r.contractors[id], nil
}

func (r *fakeContractorRepo) GetActiveIDs() ([]string, error) {
	return r.activeIDs, nil
}

func (r *fakeContractorRepo) GetDispatcherList(dispatcherID string) ([]string, error) {
	return r.lists[dispatcherID], nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: make(map[string]*models.Job)}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (r *fakeJobRepo) GetByID(id string) (*models.Job, error) {
	return r.jobs[id], nil
}

type fakeAssignmentRepo struct {
	assignments map[string][]models.Assignment // key: contractorID|date
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[string][]models.Assignment)}
}

func (r *fakeAssignmentRepo) add(a models.Assignment) {
	key := a.ContractorID + "|" + a.JobDate
	r.assignments[key] = append(r.assignments[key], a)
}

func (r *fakeAssignmentRepo) GetActiveForContractorOnDate(contractorID, date string) ([]models.Assignment, error) {
	var active []models.Assignment
	for _, a := range r.assignments[contractorID+"|"+date] {
		if a.Status.IsActive() {
			active = append(active, a)
		}
	}
	return active, nil
}

type fakeDistanceProvider struct {
	miles   float64
	minutes float64
	err     error
}

func (p *fakeDistanceProvider) GetDistance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error) {
	return p.miles, p.err
}

func (p *fakeDistanceProvider) GetTravelTime(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error) {
	return p.minutes, p.err
}

// ==========================
// Fixture helpers
// ==========================

func ratingPtr(v float64) *float64 {
	return &v
}

// nineToFive builds an active contractor working 09:00-17:00.
func nineToFive(id string) *models.Contractor {
	return &models.Contractor{
		ID:                id,
		Name:              "Contractor " + id,
		Active:            true,
		WorkingHoursStart: 9 * 60,
		WorkingHoursEnd:   17 * 60,
	}
}

// at builds a timestamp on 2030-06-10 at the given clock time.
func at(hour, minute int) time.Time {
	return time.Date(2030, time.June, 10, hour, minute, 0, 0, time.UTC)
}

// bookJob wires an existing job and its active assignment into the fakes.
func bookJob(jobs *fakeJobRepo, assignments *fakeAssignmentRepo, jobID, contractorID string, start time.Time, hours float64) {
	jobs.jobs[jobID] = &models.Job{
		ID:             jobID,
		DesiredTime:    start,
		EstimatedHours: hours,
	}
	assignments.add(models.Assignment{
		ID:           "assignment-" + jobID,
		JobID:        jobID,
		ContractorID: contractorID,
		JobDate:      start.Format(dateLayout),
		Status:       models.AssignmentAccepted,
	})
}
