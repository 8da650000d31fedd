package collector

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/walktrack-backend-go/internal/models"
)

// scriptedSource returns samples in order, failing on scripted indices.
type scriptedSource struct {
	mu    sync.Mutex
	calls int
	fail  map[int]bool
}

func (s *scriptedSource) Read() (models.AccelSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail[s.calls] {
		return models.AccelSample{}, errors.New("sensor read failed")
	}
	return models.AccelSample{X: float64(s.calls)}, nil
}

type capture struct {
	mu      sync.Mutex
	batches [][]models.AccelSample
}

func (c *capture) push(batch []models.AccelSample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches, batch)
}

func (c *capture) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, b := range c.batches {
		n += len(b)
	}
	return n
}

func TestCollectorBatchesAndStops(t *testing.T) {
	src := &scriptedSource{}
	sink := &capture{}

	c := New(src, sink.push, time.Millisecond, 3)
	c.Start(context.Background())

	assert.Eventually(t, func() bool { return sink.total() >= 6 },
		2*time.Second, 5*time.Millisecond)

	c.Stop()
	after := sink.total()

	// No deliveries after Stop returns.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, sink.total())

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, 3, len(sink.batches[0]))
}

func TestCollectorSkipsFailedReads(t *testing.T) {
	src := &scriptedSource{fail: map[int]bool{1: true, 3: true}}
	sink := &capture{}

	c := New(src, sink.push, time.Millisecond, 2)
	c.Start(context.Background())

	assert.Eventually(t, func() bool { return sink.total() >= 2 },
		2*time.Second, 5*time.Millisecond)
	c.Stop()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	// Failed reads produce no samples; the first delivered sample is the
	// second read.
	assert.Equal(t, 2.0, sink.batches[0][0].X)
}

func TestCollectorStopFlushesPartialBatch(t *testing.T) {
	src := &scriptedSource{}
	sink := &capture{}

	c := New(src, sink.push, time.Millisecond, 1000)
	c.Start(context.Background())

	assert.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return src.calls >= 3
	}, 2*time.Second, 5*time.Millisecond)

	c.Stop()
	assert.Greater(t, sink.total(), 0)
}

func TestCollectorStopWithoutStart(t *testing.T) {
	c := New(&scriptedSource{}, func([]models.AccelSample) {}, time.Millisecond, 1)
	c.Stop() // must not panic or block
}

func TestCollectorContextCancellation(t *testing.T) {
	src := &scriptedSource{}
	sink := &capture{}

	ctx, cancel := context.WithCancel(context.Background())
	c := New(src, sink.push, time.Millisecond, 2)
	c.Start(ctx)

	assert.Eventually(t, func() bool { return sink.total() >= 2 },
		2*time.Second, 5*time.Millisecond)

	cancel()
	c.Stop()
}

func TestWalkSourceCrossesThreshold(t *testing.T) {
	src := NewWalkSource(1.8)

	var above, below bool
	for i := 0; i < 50; i++ {
		s, err := src.Read()
		assert.NoError(t, err)
		mag := s.X*s.X + s.Y*s.Y + s.Z*s.Z
		if mag > 1.2*1.2 {
			above = true
		} else {
			below = true
		}
	}
	assert.True(t, above, "synthetic gait should cross the step threshold")
	assert.True(t, below, "synthetic gait should dip below the threshold")
}
