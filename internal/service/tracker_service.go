package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jengzang/walktrack-backend-go/internal/models"
	"github.com/jengzang/walktrack-backend-go/internal/motion"
	"github.com/jengzang/walktrack-backend-go/internal/observability"
	"github.com/jengzang/walktrack-backend-go/internal/repository"
	"github.com/jengzang/walktrack-backend-go/internal/spatial"
	"github.com/jengzang/walktrack-backend-go/internal/stats"
)

// TrackerService owns the live tracking session: the Idle/Tracking state
// machine, the step detector, and the hourly buckets. One session at a
// time; a mutex serializes the HTTP paths that touch the detector state.
type TrackerService struct {
	mu sync.Mutex

	detectorCfg motion.Config
	sessionRepo *repository.SessionRepository
	stepsRepo   *repository.StepsRepository
	now         func() time.Time

	tracking  bool
	detector  *motion.Detector
	deviceID  string
	start     spatial.Point
	startedAt time.Time

	// lifetime buckets accumulate across sessions for the current
	// endpoint; sessionBuckets holds only the active session's steps and
	// is what gets persisted on stop.
	buckets        stats.HourlyBuckets
	sessionBuckets stats.HourlyBuckets
}

// NewTrackerService creates a tracker with the given detector tuning.
func NewTrackerService(cfg motion.Config, sessionRepo *repository.SessionRepository, stepsRepo *repository.StepsRepository) *TrackerService {
	return &TrackerService{
		detectorCfg: cfg,
		sessionRepo: sessionRepo,
		stepsRepo:   stepsRepo,
		detector:    motion.NewDetector(cfg),
		now:         time.Now,
	}
}

// resolveFix validates a client-reported location fix and maps its error
// codes to the service error taxonomy.
func resolveFix(fix models.LocationFix) (spatial.Point, error) {
	switch fix.Error {
	case "":
	case "permission_denied":
		observability.LocationFailures.WithLabelValues("permission_denied").Inc()
		return spatial.Point{}, ErrPermissionDenied
	default:
		observability.LocationFailures.WithLabelValues("unavailable").Inc()
		return spatial.Point{}, ErrLocationUnavailable
	}

	if fix.Latitude == nil || fix.Longitude == nil {
		observability.LocationFailures.WithLabelValues("unavailable").Inc()
		return spatial.Point{}, ErrLocationUnavailable
	}

	p := spatial.Point{Latitude: *fix.Latitude, Longitude: *fix.Longitude}
	if !p.Valid() {
		observability.LocationFailures.WithLabelValues("unavailable").Inc()
		return spatial.Point{}, ErrLocationUnavailable
	}
	return p, nil
}

// Start begins a new tracking session at the given fix. Fails with no
// state change if a session is active or the fix is unusable.
func (s *TrackerService) Start(deviceID string, fix models.LocationFix) error {
	point, err := resolveFix(fix)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tracking {
		return ErrAlreadyTracking
	}

	s.tracking = true
	s.deviceID = deviceID
	s.start = point
	s.startedAt = s.now()
	s.detector.Reset()
	s.sessionBuckets = stats.HourlyBuckets{}

	observability.SessionsStarted.Inc()
	log.Printf("Session started at (%.5f, %.5f)", point.Latitude, point.Longitude)
	return nil
}

// Stop ends the active session at the given fix, computes the distance,
// and persists the session and its hourly steps. The tracker state is
// only cleared once persistence has been attempted; a failed fix leaves
// the session running.
func (s *TrackerService) Stop(fix models.LocationFix) (*models.SessionResult, error) {
	point, err := resolveFix(fix)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tracking {
		return nil, ErrMissingStartLocation
	}

	endedAt := s.now()
	result := &models.SessionResult{
		DistanceKm:     spatial.HaversineKm(s.start, point),
		Steps:          s.detector.Steps(),
		DurationSecs:   int64(endedAt.Sub(s.startedAt).Seconds()),
		BearingDegrees: spatial.Bearing(s.start, point),
	}

	session := &models.WalkSession{
		DeviceID:       s.deviceID,
		StartedAt:      s.startedAt.Unix(),
		EndedAt:        endedAt.Unix(),
		StartLatitude:  s.start.Latitude,
		StartLongitude: s.start.Longitude,
		EndLatitude:    point.Latitude,
		EndLongitude:   point.Longitude,
		DistanceKm:     result.DistanceKm,
		Steps:          result.Steps,
		BearingDegrees: result.BearingDegrees,
	}

	if s.sessionRepo != nil {
		if _, err := s.sessionRepo.Create(session); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}
	}
	if s.stepsRepo != nil {
		day := endedAt.UTC().Format("2006-01-02")
		if err := s.stepsRepo.AddBuckets(day, s.sessionBuckets); err != nil {
			return nil, fmt.Errorf("failed to persist hourly steps: %w", err)
		}
	}

	s.tracking = false
	s.deviceID = ""
	s.start = spatial.Point{}

	observability.SessionsCompleted.Inc()
	observability.SessionDistanceKm.Observe(result.DistanceKm)
	log.Printf("Session completed: %.3f km, %d steps", result.DistanceKm, result.Steps)
	return result, nil
}

// Ingest feeds a batch of accelerometer samples to the detector. Samples
// arriving while Idle are dropped; delivery racing a stop is benign and
// those samples simply do not count.
func (s *TrackerService) Ingest(batch []models.AccelSample) models.IngestResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	observability.SampleBatches.Inc()

	if !s.tracking {
		return models.IngestResult{Tracking: false}
	}

	added := 0
	for _, raw := range batch {
		// Hours are bucketed in UTC so a server timezone change does
		// not shift history.
		at := time.UnixMilli(raw.TimestampMs).UTC()
		if raw.TimestampMs == 0 {
			at = s.now().UTC()
		}
		sample := motion.Sample{X: raw.X, Y: raw.Y, Z: raw.Z}
		if s.detector.Feed(sample, at) {
			added++
			hour := at.Hour()
			s.buckets.Record(hour, 1)
			s.sessionBuckets.Record(hour, 1)
		}
	}

	if added > 0 {
		observability.StepsDetected.Add(float64(added))
	}

	return models.IngestResult{
		Tracking:   true,
		StepsAdded: added,
		Steps:      s.detector.Steps(),
	}
}

// Status returns the live view of the tracker.
func (s *TrackerService) Status() models.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.SessionStatus{
		Tracking:    s.tracking,
		Steps:       s.detector.Steps(),
		HourlySteps: s.buckets,
	}
	if s.tracking {
		status.StartedAt = s.startedAt.Unix()
		status.StartLatitude = s.start.Latitude
		status.StartLongitude = s.start.Longitude
	}
	return status
}

// LiveBuckets returns the in-memory hourly distribution accumulated since
// process start.
func (s *TrackerService) LiveBuckets() stats.HourlyBuckets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets
}

// SessionBuckets returns the hourly distribution of the active session
// only. Zero when Idle; these counts are not yet persisted.
func (s *TrackerService) SessionBuckets() stats.HourlyBuckets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionBuckets
}
