package recommendation

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	contractorRepo "smartscheduler/database/repository/contractor"
	jobRepo "smartscheduler/database/repository/job"
	"smartscheduler/models"
	"smartscheduler/services/distance"
	"smartscheduler/utils"

	"go.uber.org/zap"
)

const (
	topRecommendations  = 5
	defaultMaxParallel  = 8
	defaultSweepTimeout = 30 * time.Second
)

// DefaultRecommendationService implements RecommendationService. Per-candidate
// work fans out with bounded parallelism; one candidate's failure never
// affects the others.
type DefaultRecommendationService struct {
	JobRepo        jobRepo.JobRepository
	ContractorRepo contractorRepo.ContractorRepository
	Availability   AvailabilityEngine
	Distance       distance.Provider

	// MaxParallel bounds concurrent candidate evaluation; zero means the default.
	MaxParallel int
	// Timeout caps one full candidate sweep; zero means the default.
	Timeout time.Duration
	// Now allows tests to pin the clock.
	Now func() time.Time
}

func (s *DefaultRecommendationService) maxParallel() int {
	if s.MaxParallel <= 0 {
		return defaultMaxParallel
	}
	return s.MaxParallel
}

func (s *DefaultRecommendationService) sweepTimeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultSweepTimeout
	}
	return s.Timeout
}

func (s *DefaultRecommendationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetRecommendations resolves the candidate set for the job, scores every
// candidate, and returns the top five sorted by score descending (ties broken
// by contractor id ascending).
func (s *DefaultRecommendationService) GetRecommendations(ctx context.Context, jobID, dispatcherID string, contractorListOnly bool) (*models.RecommendationResult, error) {
	logger := utils.GetLogger()

	job, err := s.JobRepo.GetByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", jobID, err)
	}
	if job == nil {
		return nil, NewNotFoundError(fmt.Sprintf("job %s not found", jobID))
	}
	if !job.DesiredTime.After(s.now()) {
		return nil, NewInvalidArgumentError("job desired time must be in the future")
	}

	var candidateIDs []string
	if contractorListOnly {
		candidateIDs, err = s.ContractorRepo.GetDispatcherList(dispatcherID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dispatcher list for %s: %w", dispatcherID, err)
		}
	} else {
		candidateIDs, err = s.ContractorRepo.GetActiveIDs()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch active contractors: %w", err)
		}
	}
	if len(candidateIDs) == 0 {
		return &models.RecommendationResult{
			Recommendations: []models.Recommendation{},
			Message:         models.MessageNoContractors,
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.sweepTimeout())
	defer cancel()

	resultsCh := make(chan models.Recommendation, len(candidateIDs))
	sem := make(chan struct{}, s.maxParallel())
	var wg sync.WaitGroup

dispatch:
	for _, id := range candidateIDs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			// Deadline reached: return what we have instead of failing.
			logger.Warn("recommendation sweep deadline reached, omitting remaining candidates",
				zap.String("jobId", job.ID))
			break dispatch
		}

		wg.Add(1)
		go func(contractorID string) {
			defer wg.Done()
			defer func() { <-sem }()
			if rec, ok := s.scoreCandidate(ctx, job, contractorID, logger); ok {
				resultsCh <- rec
			}
		}(id)
	}

	wg.Wait()
	close(resultsCh)

	recommendations := []models.Recommendation{}
	for rec := range resultsCh {
		recommendations = append(recommendations, rec)
	}

	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].Score == recommendations[j].Score {
			return recommendations[i].ContractorID < recommendations[j].ContractorID
		}
		return recommendations[i].Score > recommendations[j].Score
	})
	if len(recommendations) > topRecommendations {
		recommendations = recommendations[:topRecommendations]
	}

	return &models.RecommendationResult{
		Recommendations: recommendations,
		Message:         models.MessageSuccess,
	}, nil
}

// scoreCandidate evaluates one contractor against the job. Failures are
// logged and reported as not-ok so the sweep skips the candidate.
func (s *DefaultRecommendationService) scoreCandidate(ctx context.Context, job *models.Job, contractorID string, logger *zap.Logger) (models.Recommendation, bool) {
	contractor, err := s.ContractorRepo.GetByID(contractorID)
	if err != nil {
		logger.Warn("skipping candidate: contractor lookup failed",
			zap.String("contractorId", contractorID), zap.Error(err))
		return models.Recommendation{}, false
	}
	if contractor == nil {
		logger.Warn("skipping candidate: contractor not found",
			zap.String("contractorId", contractorID))
		return models.Recommendation{}, false
	}

	travelMinutes, err := s.Distance.GetTravelTime(ctx, contractor.Latitude, contractor.Longitude, job.Latitude, job.Longitude)
	if err != nil {
		logger.Warn("travel time lookup failed, assuming zero travel",
			zap.String("contractorId", contractorID), zap.Error(err))
		travelMinutes = 0
	}
	miles, err := s.Distance.GetDistance(ctx, contractor.Latitude, contractor.Longitude, job.Latitude, job.Longitude)
	if err != nil {
		// Degraded distance penalizes the candidate rather than excluding it.
		logger.Warn("distance lookup failed, assuming worst-case distance",
			zap.String("contractorId", contractorID), zap.Error(err))
		miles = maxDistanceMiles
	}

	durationHours := job.EstimatedHours
	if durationHours <= 0 {
		durationHours = defaultJobDurationHours
	}
	available, err := s.Availability.IsAvailable(contractor.ID, job.DesiredTime, durationHours, travelMinutes)
	if err != nil {
		logger.Warn("skipping candidate: availability check failed",
			zap.String("contractorId", contractorID), zap.Error(err))
		return models.Recommendation{}, false
	}

	components := models.ScoreComponents{
		Rating:   NormalizeRating(contractor.Rating),
		Distance: NormalizeDistance(miles),
	}
	if available {
		components.Availability = 1.0
	}
	score, err := CalculateScore(components.Availability, components.Rating, components.Distance)
	if err != nil {
		logger.Error("skipping candidate: scoring failed",
			zap.String("contractorId", contractorID), zap.Error(err))
		return models.Recommendation{}, false
	}

	slots, err := s.Availability.GetAvailableTimeSlots(contractor.ID, job.DesiredTime)
	if err != nil {
		logger.Warn("time slot computation failed, returning none",
			zap.String("contractorId", contractorID), zap.Error(err))
		slots = nil
	}
	if slots == nil {
		slots = []time.Time{}
	}

	return models.Recommendation{
		ContractorID:       contractor.ID,
		Name:               contractor.Name,
		Score:              score,
		Rating:             contractor.Rating,
		ReviewCount:        contractor.ReviewCount,
		DistanceMiles:      miles,
		TravelTimeMinutes:  travelMinutes,
		AvailableTimeSlots: slots,
	}, true
}
