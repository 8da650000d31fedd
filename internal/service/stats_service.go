package service

import (
	"fmt"
	"time"

	"github.com/jengzang/walktrack-backend-go/internal/models"
	"github.com/jengzang/walktrack-backend-go/internal/repository"
	"github.com/jengzang/walktrack-backend-go/internal/stats"
)

// StatsService serves step statistics from the persisted history, merged
// with the live tracker for today's view.
type StatsService struct {
	sessionRepo *repository.SessionRepository
	stepsRepo   *repository.StepsRepository
	tracker     *TrackerService
	now         func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(sessionRepo *repository.SessionRepository, stepsRepo *repository.StepsRepository, tracker *TrackerService) *StatsService {
	return &StatsService{
		sessionRepo: sessionRepo,
		stepsRepo:   stepsRepo,
		tracker:     tracker,
		now:         time.Now,
	}
}

// GetSessions retrieves the persisted session history.
func (s *StatsService) GetSessions(filter models.WalkSessionFilter) (*models.WalkSessionsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	sessions, total, err := s.sessionRepo.GetSessions(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	return &models.WalkSessionsResponse{
		Data:       sessions,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetHourly returns the 24 buckets for a day. For today the live tracker's
// unsaved steps are merged in so the chart does not lag the session.
func (s *StatsService) GetHourly(day string) (*models.HourlyStepsResponse, error) {
	if day == "" {
		day = s.now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", day, err)
	}

	buckets, err := s.stepsRepo.GetDay(day)
	if err != nil {
		return nil, err
	}

	if s.tracker != nil && day == s.now().UTC().Format("2006-01-02") {
		status := s.tracker.Status()
		if status.Tracking {
			live := s.tracker.SessionBuckets()
			buckets.Merge(live)
		}
	}

	return &models.HourlyStepsResponse{
		Day:     day,
		Buckets: buckets,
		Total:   buckets.Sum(),
	}, nil
}

// GetSummary aggregates the persisted history into headline numbers.
func (s *StatsService) GetSummary() (*models.StepsSummary, error) {
	stepCounts, totalKm, err := s.sessionRepo.StepCounts()
	if err != nil {
		return nil, err
	}

	buckets, err := s.stepsRepo.GetAll()
	if err != nil {
		return nil, err
	}
	peakHour, peakSteps := buckets.Peak()

	return &models.StepsSummary{
		TotalSteps:       int(stats.Sum(stepCounts)),
		TotalDistanceKm:  totalKm,
		SessionCount:     len(stepCounts),
		MeanStepsPerWalk: stats.Mean(stepCounts),
		MaxStepsPerWalk:  stats.Max(stepCounts),
		PeakHour:         peakHour,
		PeakHourSteps:    peakSteps,
	}, nil
}
