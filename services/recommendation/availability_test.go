package recommendation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartscheduler/models"
)

func newEngine(contractors *fakeContractorRepo, jobs *fakeJobRepo, assignments *fakeAssignmentRepo) *DefaultAvailabilityEngine {
	return &DefaultAvailabilityEngine{
		ContractorRepo: contractors,
		JobRepo:        jobs,
		AssignmentRepo: assignments,
	}
}

func TestIsAvailableValidation(t *testing.T) {
	engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), newFakeJobRepo(), newFakeAssignmentRepo())

	tests := []struct {
		name         string
		contractorID string
		start        time.Time
		duration     float64
		travel       float64
		wantInvalid  bool
		wantNotFound bool
	}{
		{name: "empty contractor id", contractorID: "", start: at(10, 0), duration: 1, wantInvalid: true},
		{name: "zero duration", contractorID: "c-1", start: at(10, 0), duration: 0, wantInvalid: true},
		{name: "negative duration", contractorID: "c-1", start: at(10, 0), duration: -2, wantInvalid: true},
		{name: "negative travel time", contractorID: "c-1", start: at(10, 0), duration: 1, travel: -5, wantInvalid: true},
		{name: "unknown contractor", contractorID: "ghost", start: at(10, 0), duration: 1, wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.IsAvailable(tt.contractorID, tt.start, tt.duration, tt.travel)
			require.Error(t, err)
			assert.Equal(t, tt.wantInvalid, IsInvalidArgument(err))
			assert.Equal(t, tt.wantNotFound, IsNotFound(err))
		})
	}
}

func TestIsAvailableWorkingHours(t *testing.T) {
	engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), newFakeJobRepo(), newFakeAssignmentRepo())

	tests := []struct {
		name     string
		start    time.Time
		duration float64
		travel   float64
		expected bool
	}{
		{name: "mid-day job fits", start: at(10, 0), duration: 2, expected: true},
		{name: "starts before working hours", start: at(8, 0), duration: 1, expected: false},
		{name: "starts exactly at opening", start: at(9, 0), duration: 1, expected: true},
		{name: "runs past closing", start: at(16, 30), duration: 1.5, expected: false},
		{name: "ends exactly at closing", start: at(16, 0), duration: 1, expected: true},
		{name: "starts exactly at closing", start: at(17, 0), duration: 1, expected: false},
		{name: "travel time pushes past closing", start: at(16, 0), duration: 1, travel: 30, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := engine.IsAvailable("c-1", tt.start, tt.duration, tt.travel)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, available)
		})
	}
}

func TestIsAvailableBufferRule(t *testing.T) {
	jobs := newFakeJobRepo()
	assignments := newFakeAssignmentRepo()
	// Existing job occupies 10:00-11:00.
	bookJob(jobs, assignments, "job-existing", "c-1", at(10, 0), 1)
	engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), jobs, assignments)

	tests := []struct {
		name     string
		start    time.Time
		duration float64
		expected bool
	}{
		{name: "back to back after", start: at(11, 0), duration: 1, expected: false},
		{name: "ten minute gap after", start: at(11, 10), duration: 1, expected: false},
		{name: "exact buffer gap after", start: at(11, 15), duration: 1, expected: true},
		{name: "exact buffer gap before", start: at(8, 45), duration: 1, expected: false}, // 8:45 is before opening
		{name: "ends ten minutes before", start: at(9, 0), duration: 50.0 / 60.0, expected: false},
		{name: "ends exactly buffer before", start: at(9, 0), duration: 45.0 / 60.0, expected: true},
		{name: "overlapping window", start: at(10, 30), duration: 1, expected: false},
		{name: "well clear of the booking", start: at(13, 0), duration: 2, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := engine.IsAvailable("c-1", tt.start, tt.duration, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, available)
		})
	}
}

func TestIsAvailableCustomBuffer(t *testing.T) {
	jobs := newFakeJobRepo()
	assignments := newFakeAssignmentRepo()
	bookJob(jobs, assignments, "job-existing", "c-1", at(10, 0), 1)

	engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), jobs, assignments)
	engine.BufferMinutes = 30

	available, err := engine.IsAvailable("c-1", at(11, 15), 1, 0)
	require.NoError(t, err)
	assert.False(t, available, "15-minute gap should fail a 30-minute buffer")

	available, err = engine.IsAvailable("c-1", at(11, 30), 1, 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableIgnoresInactiveAssignments(t *testing.T) {
	jobs := newFakeJobRepo(&models.Job{ID: "job-declined", DesiredTime: at(10, 0), EstimatedHours: 1})
	assignments := newFakeAssignmentRepo()
	assignments.add(models.Assignment{
		ID:           "a-1",
		JobID:        "job-declined",
		ContractorID: "c-1",
		JobDate:      at(10, 0).Format(dateLayout),
		Status:       models.AssignmentDeclined,
	})
	engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), jobs, assignments)

	available, err := engine.IsAvailable("c-1", at(10, 0), 1, 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableIgnoresOtherDates(t *testing.T) {
	jobs := newFakeJobRepo()
	assignments := newFakeAssignmentRepo()
	// Booked solid on the previous day.
	bookJob(jobs, assignments, "job-yesterday", "c-1", at(10, 0).AddDate(0, 0, -1), 8)
	engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), jobs, assignments)

	available, err := engine.IsAvailable("c-1", at(10, 0), 2, 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestGetAvailableTimeSlots(t *testing.T) {
	t.Run("free day yields every working hour", func(t *testing.T) {
		engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), newFakeJobRepo(), newFakeAssignmentRepo())

		slots, err := engine.GetAvailableTimeSlots("c-1", at(0, 0))
		require.NoError(t, err)
		require.Len(t, slots, 8)
		assert.Equal(t, at(9, 0), slots[0])
		assert.Equal(t, at(16, 0), slots[7])
	})

	t.Run("booked hour is excluded", func(t *testing.T) {
		jobs := newFakeJobRepo()
		assignments := newFakeAssignmentRepo()
		bookJob(jobs, assignments, "job-existing", "c-1", at(10, 0), 1)
		engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), jobs, assignments)

		slots, err := engine.GetAvailableTimeSlots("c-1", at(0, 0))
		require.NoError(t, err)
		require.Len(t, slots, 7)
		assert.NotContains(t, slots, at(10, 0))
		assert.Contains(t, slots, at(9, 0))
		assert.Contains(t, slots, at(11, 0))
	})

	t.Run("job without duration blocks the default eight hours", func(t *testing.T) {
		jobs := newFakeJobRepo()
		assignments := newFakeAssignmentRepo()
		bookJob(jobs, assignments, "job-open-ended", "c-1", at(9, 0), 0)
		engine := newEngine(newFakeContractorRepo(nineToFive("c-1")), jobs, assignments)

		slots, err := engine.GetAvailableTimeSlots("c-1", at(0, 0))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("unknown contractor yields empty list", func(t *testing.T) {
		engine := newEngine(newFakeContractorRepo(), newFakeJobRepo(), newFakeAssignmentRepo())

		slots, err := engine.GetAvailableTimeSlots("ghost", at(0, 0))
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})
}
