package recommendation

import (
	"fmt"
	"time"

	assignmentRepo "smartscheduler/database/repository/assignment"
	contractorRepo "smartscheduler/database/repository/contractor"
	jobRepo "smartscheduler/database/repository/job"
	"smartscheduler/models"
)

const (
	defaultBufferMinutes = 15

	// Duration assumed for jobs that do not specify one.
	defaultJobDurationHours = 8.0

	dateLayout = "2006-01-02"
)

// DefaultAvailabilityEngine implements AvailabilityEngine against the
// contractor, job and assignment directories.
type DefaultAvailabilityEngine struct {
	ContractorRepo contractorRepo.ContractorRepository
	JobRepo        jobRepo.JobRepository
	AssignmentRepo assignmentRepo.AssignmentRepository

	// BufferMinutes is the minimum gap required between adjacent jobs.
	// Zero or negative means unset and falls back to the 15-minute default.
	BufferMinutes int
}

// interval is a half-open [start, end) time window.
type interval struct {
	start time.Time
	end   time.Time
}

// overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap; the buffer rule handles those separately.
func (iv interval) overlaps(other interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

func (e *DefaultAvailabilityEngine) buffer() time.Duration {
	minutes := e.BufferMinutes
	if minutes <= 0 {
		minutes = defaultBufferMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// IsAvailable reports whether the contractor can take a job starting at
// desiredStart, lasting durationHours plus travelTimeMinutes, without
// leaving working hours or colliding (within the buffer) with an active
// assignment on that date.
func (e *DefaultAvailabilityEngine) IsAvailable(contractorID string, desiredStart time.Time, durationHours, travelTimeMinutes float64) (bool, error) {
	if contractorID == "" {
		return false, NewInvalidArgumentError("contractor id is required")
	}
	if durationHours <= 0 {
		return false, NewInvalidArgumentError("duration hours must be positive")
	}
	if travelTimeMinutes < 0 {
		return false, NewInvalidArgumentError("travel time minutes must not be negative")
	}

	contractor, err := e.ContractorRepo.GetByID(contractorID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch contractor %s: %w", contractorID, err)
	}
	if contractor == nil {
		return false, NewNotFoundError(fmt.Sprintf("contractor %s not found", contractorID))
	}

	jobEnd := desiredStart.
		Add(time.Duration(durationHours * float64(time.Hour))).
		Add(time.Duration(travelTimeMinutes * float64(time.Minute)))

	if !withinWorkingHours(contractor, desiredStart, jobEnd) {
		return false, nil
	}

	busy, err := e.busyIntervals(contractorID, desiredStart)
	if err != nil {
		return false, err
	}

	desired := interval{start: desiredStart, end: jobEnd}
	buffer := e.buffer()
	for _, existing := range busy {
		// Desired job ends before the existing one starts: the gap must be
		// at least the buffer.
		if !desired.end.After(existing.start) && desired.end.Add(buffer).After(existing.start) {
			return false, nil
		}
		// Existing job ends before the desired one starts: same rule.
		if !existing.end.After(desired.start) && existing.end.Add(buffer).After(desired.start) {
			return false, nil
		}
		if desired.overlaps(existing) {
			return false, nil
		}
	}
	return true, nil
}

// GetAvailableTimeSlots produces the contractor's open one-hour slots on the
// given date: hour-aligned starts from working-hours-start up to the last
// full hour before working-hours-end, skipping hours that overlap an active
// assignment. An unknown contractor yields an empty list, not an error.
func (e *DefaultAvailabilityEngine) GetAvailableTimeSlots(contractorID string, date time.Time) ([]time.Time, error) {
	contractor, err := e.ContractorRepo.GetByID(contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contractor %s: %w", contractorID, err)
	}
	if contractor == nil {
		return []time.Time{}, nil
	}

	busy, err := e.busyIntervals(contractorID, date)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	slots := []time.Time{}
	for minute := contractor.WorkingHoursStart; minute+60 <= contractor.WorkingHoursEnd; minute += 60 {
		slot := interval{
			start: dayStart.Add(time.Duration(minute) * time.Minute),
			end:   dayStart.Add(time.Duration(minute+60) * time.Minute),
		}
		free := true
		for _, existing := range busy {
			if slot.overlaps(existing) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, slot.start)
		}
	}
	return slots, nil
}

// busyIntervals resolves the contractor's active assignments on the date
// into concrete time windows. Assignments whose job cannot be resolved are
// skipped; lookup failures propagate.
func (e *DefaultAvailabilityEngine) busyIntervals(contractorID string, date time.Time) ([]interval, error) {
	assignments, err := e.AssignmentRepo.GetActiveForContractorOnDate(contractorID, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments for contractor %s: %w", contractorID, err)
	}

	intervals := make([]interval, 0, len(assignments))
	for _, a := range assignments {
		job, err := e.JobRepo.GetByID(a.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job %s for assignment %s: %w", a.JobID, a.ID, err)
		}
		if job == nil {
			continue
		}
		duration := job.EstimatedHours
		if duration <= 0 {
			duration = defaultJobDurationHours
		}
		intervals = append(intervals, interval{
			start: job.DesiredTime,
			end:   job.DesiredTime.Add(time.Duration(duration * float64(time.Hour))),
		})
	}
	return intervals, nil
}

// withinWorkingHours checks the desired window against the contractor's
// working hours, comparing time-of-day only. The start is half-open
// (start <= t < end); the window may end exactly at working-hours-end.
func withinWorkingHours(contractor *models.Contractor, start, end time.Time) bool {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	startMin := start.Sub(dayStart).Minutes()
	// A window running past midnight pushes endMin beyond 1440 and fails
	// the end-of-day check below.
	endMin := end.Sub(dayStart).Minutes()

	whStart := float64(contractor.WorkingHoursStart)
	whEnd := float64(contractor.WorkingHoursEnd)

	if startMin < whStart || startMin >= whEnd {
		return false
	}
	if endMin < whStart || endMin > whEnd {
		return false
	}
	return true
}
