package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jengzang/walktrack-backend-go/internal/database"
	"github.com/jengzang/walktrack-backend-go/internal/models"
)

// openTestDB opens an in-memory database with the full schema applied.
// Connections are capped at one so the memory database is shared.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func testSession(startedAt int64, steps int, km float64) *models.WalkSession {
	return &models.WalkSession{
		DeviceID:       "dev-1",
		StartedAt:      startedAt,
		EndedAt:        startedAt + 600,
		StartLatitude:  51.5074,
		StartLongitude: -0.1278,
		EndLatitude:    51.5080,
		EndLongitude:   -0.1290,
		DistanceKm:     km,
		Steps:          steps,
	}
}

func TestSessionRepositoryCreateAndList(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create(testSession(1000, 120, 0.1))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = repo.Create(testSession(2000, 250, 0.2))
	require.NoError(t, err)

	sessions, total, err := repo.GetSessions(models.WalkSessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, sessions, 2)
	// Newest first.
	assert.Equal(t, int64(2000), sessions[0].StartedAt)
	assert.Equal(t, 250, sessions[0].Steps)
}

func TestSessionRepositoryFilter(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	for _, s := range []*models.WalkSession{
		testSession(1000, 50, 0.05),
		testSession(2000, 200, 0.2),
		testSession(3000, 400, 0.4),
	} {
		_, err := repo.Create(s)
		require.NoError(t, err)
	}

	sessions, total, err := repo.GetSessions(models.WalkSessionFilter{From: 1500, MinSteps: 300})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, sessions, 1)
	assert.Equal(t, 400, sessions[0].Steps)
}

func TestSessionRepositoryPagination(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	for i := int64(1); i <= 5; i++ {
		_, err := repo.Create(testSession(i*1000, int(i)*10, 0.1))
		require.NoError(t, err)
	}

	sessions, total, err := repo.GetSessions(models.WalkSessionFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(3000), sessions[0].StartedAt)
}

func TestSessionRepositoryStepCounts(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	_, err := repo.Create(testSession(1000, 100, 0.5))
	require.NoError(t, err)
	_, err = repo.Create(testSession(2000, 300, 1.5))
	require.NoError(t, err)

	steps, totalKm, err := repo.StepCounts()
	require.NoError(t, err)
	assert.ElementsMatch(t, []float64{100, 300}, steps)
	assert.InDelta(t, 2.0, totalKm, 1e-9)
}

func TestStepsRepositoryUpsert(t *testing.T) {
	repo := NewStepsRepository(openTestDB(t))

	require.NoError(t, repo.AddSteps("2025-06-01", 9, 40))
	require.NoError(t, repo.AddSteps("2025-06-01", 9, 20))
	require.NoError(t, repo.AddSteps("2025-06-01", 17, 100))
	require.NoError(t, repo.AddSteps("2025-06-02", 9, 7))

	buckets, err := repo.GetDay("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 60, buckets[9])
	assert.Equal(t, 100, buckets[17])
	assert.Equal(t, 160, buckets.Sum())
}

func TestStepsRepositoryIgnoresInvalid(t *testing.T) {
	repo := NewStepsRepository(openTestDB(t))

	require.NoError(t, repo.AddSteps("2025-06-01", 24, 10))
	require.NoError(t, repo.AddSteps("2025-06-01", -1, 10))
	require.NoError(t, repo.AddSteps("2025-06-01", 5, 0))

	buckets, err := repo.GetDay("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 0, buckets.Sum())
}

func TestStepsRepositoryGetAll(t *testing.T) {
	repo := NewStepsRepository(openTestDB(t))

	require.NoError(t, repo.AddSteps("2025-06-01", 8, 10))
	require.NoError(t, repo.AddSteps("2025-06-02", 8, 15))
	require.NoError(t, repo.AddSteps("2025-06-02", 20, 5))

	buckets, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 25, buckets[8])
	assert.Equal(t, 5, buckets[20])
}
