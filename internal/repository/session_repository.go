package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/walktrack-backend-go/internal/models"
)

// SessionRepository handles database operations for completed walk sessions.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a completed session and returns its ID.
func (r *SessionRepository) Create(s *models.WalkSession) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO walk_sessions
			(device_id, started_at, ended_at, start_latitude, start_longitude,
			 end_latitude, end_longitude, distance_km, steps, bearing_degrees)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.DeviceID, s.StartedAt, s.EndedAt, s.StartLatitude, s.StartLongitude,
		s.EndLatitude, s.EndLongitude, s.DistanceKm, s.Steps, s.BearingDegrees,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get session id: %w", err)
	}
	return id, nil
}

// GetSessions retrieves sessions with filtering and pagination.
func (r *SessionRepository) GetSessions(filter models.WalkSessionFilter) ([]models.WalkSession, int64, error) {
	query := `SELECT id, device_id, started_at, ended_at, start_latitude, start_longitude,
		end_latitude, end_longitude, distance_km, steps, bearing_degrees, created_at
		FROM walk_sessions`

	var conditions []string
	var args []interface{}

	if filter.From > 0 {
		conditions = append(conditions, "started_at >= ?")
		args = append(args, filter.From)
	}
	if filter.To > 0 {
		conditions = append(conditions, "started_at <= ?")
		args = append(args, filter.To)
	}
	if filter.MinSteps > 0 {
		conditions = append(conditions, "steps >= ?")
		args = append(args, filter.MinSteps)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM walk_sessions"+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += where + " ORDER BY started_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WalkSession
	for rows.Next() {
		var s models.WalkSession
		err := rows.Scan(
			&s.ID, &s.DeviceID, &s.StartedAt, &s.EndedAt,
			&s.StartLatitude, &s.StartLongitude, &s.EndLatitude, &s.EndLongitude,
			&s.DistanceKm, &s.Steps, &s.BearingDegrees, &s.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, total, nil
}

// StepCounts returns the per-session step counts and distance totals used
// by the summary endpoint.
func (r *SessionRepository) StepCounts() ([]float64, float64, error) {
	rows, err := r.db.Query("SELECT steps, distance_km FROM walk_sessions")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query step counts: %w", err)
	}
	defer rows.Close()

	var steps []float64
	var totalDistance float64
	for rows.Next() {
		var s float64
		var d float64
		if err := rows.Scan(&s, &d); err != nil {
			return nil, 0, fmt.Errorf("failed to scan step count: %w", err)
		}
		steps = append(steps, s)
		totalDistance += d
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read step counts: %w", err)
	}

	return steps, totalDistance, nil
}
