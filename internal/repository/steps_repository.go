package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/walktrack-backend-go/internal/stats"
)

// StepsRepository handles database operations for hourly step buckets.
type StepsRepository struct {
	db *sql.DB
}

// NewStepsRepository creates a new steps repository.
func NewStepsRepository(db *sql.DB) *StepsRepository {
	return &StepsRepository{db: db}
}

// AddSteps adds n steps to the bucket for (day, hour), creating the row on
// first write. day uses the 2006-01-02 format.
func (r *StepsRepository) AddSteps(day string, hour, n int) error {
	if hour < 0 || hour >= stats.HoursPerDay || n <= 0 {
		return nil
	}

	_, err := r.db.Exec(`
		INSERT INTO hourly_steps (day, hour, steps) VALUES (?, ?, ?)
		ON CONFLICT(day, hour) DO UPDATE SET steps = steps + excluded.steps`,
		day, hour, n,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hourly steps: %w", err)
	}
	return nil
}

// AddBuckets persists every non-empty bucket for the given day.
func (r *StepsRepository) AddBuckets(day string, buckets stats.HourlyBuckets) error {
	for hour, n := range buckets {
		if n == 0 {
			continue
		}
		if err := r.AddSteps(day, hour, n); err != nil {
			return err
		}
	}
	return nil
}

// GetDay returns the 24 hourly buckets recorded for a day. Missing hours
// are zero.
func (r *StepsRepository) GetDay(day string) (stats.HourlyBuckets, error) {
	var buckets stats.HourlyBuckets

	rows, err := r.db.Query("SELECT hour, steps FROM hourly_steps WHERE day = ?", day)
	if err != nil {
		return buckets, fmt.Errorf("failed to query hourly steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hour, n int
		if err := rows.Scan(&hour, &n); err != nil {
			return buckets, fmt.Errorf("failed to scan hourly steps: %w", err)
		}
		buckets.Record(hour, n)
	}
	if err := rows.Err(); err != nil {
		return buckets, fmt.Errorf("failed to read hourly steps: %w", err)
	}

	return buckets, nil
}

// GetAll returns the all-time hourly distribution across every day.
func (r *StepsRepository) GetAll() (stats.HourlyBuckets, error) {
	var buckets stats.HourlyBuckets

	rows, err := r.db.Query("SELECT hour, SUM(steps) FROM hourly_steps GROUP BY hour")
	if err != nil {
		return buckets, fmt.Errorf("failed to query hourly totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hour, n int
		if err := rows.Scan(&hour, &n); err != nil {
			return buckets, fmt.Errorf("failed to scan hourly totals: %w", err)
		}
		buckets.Record(hour, n)
	}
	if err := rows.Err(); err != nil {
		return buckets, fmt.Errorf("failed to read hourly totals: %w", err)
	}

	return buckets, nil
}
