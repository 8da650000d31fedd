package collector

import (
	"math"
	"sync"
	"time"

	"github.com/jengzang/walktrack-backend-go/internal/models"
)

// WalkSource synthesizes a gait-like acceleration signal for development
// and load testing: a sine wave around rest gravity whose peaks cross the
// step threshold at the configured cadence.
type WalkSource struct {
	mu        sync.Mutex
	phase     float64
	cadenceHz float64
	amplitude float64
	now       func() time.Time
}

// NewWalkSource creates a source walking at the given cadence (steps per
// second). A typical walking cadence is around 1.8.
func NewWalkSource(cadenceHz float64) *WalkSource {
	if cadenceHz <= 0 {
		cadenceHz = 1.8
	}
	return &WalkSource{
		cadenceHz: cadenceHz,
		amplitude: 0.6,
		now:       time.Now,
	}
}

// Read returns the next sample along the synthetic gait. Never fails; the
// error is part of the SampleSource contract.
func (w *WalkSource) Read() (models.AccelSample, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Rest magnitude 1.0 plus the gait oscillation, split across axes so
	// the vector norm carries the signal.
	mag := 1.0 + w.amplitude*math.Sin(w.phase)
	w.phase += 2 * math.Pi * w.cadenceHz / 10 // assumes ~10 reads per second

	return models.AccelSample{
		X:           mag * 0.26,
		Y:           mag * 0.53,
		Z:           mag * 0.81,
		TimestampMs: w.now().UnixMilli(),
	}, nil
}
