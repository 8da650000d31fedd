package collector

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jengzang/walktrack-backend-go/internal/models"
	"github.com/jengzang/walktrack-backend-go/internal/observability"
)

// SampleSource yields one accelerometer reading per call. Read errors are
// expected from flaky sensors and are counted, not retried.
type SampleSource interface {
	Read() (models.AccelSample, error)
}

// PushFunc delivers a batch of samples downstream (the tracker service or
// an HTTP client pushing to the server).
type PushFunc func(batch []models.AccelSample)

// Collector polls a SampleSource on a fixed interval and pushes batches
// downstream. It replaces fire-and-forget background timers with explicit
// start/stop semantics: Start launches the loop, Stop (or context
// cancellation) ends it and waits for the final flush.
type Collector struct {
	source    SampleSource
	push      PushFunc
	interval  time.Duration
	batchSize int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a collector. batchSize samples are buffered before each
// push; the remainder is flushed on stop.
func New(source SampleSource, push PushFunc, interval time.Duration, batchSize int) *Collector {
	if interval <= 0 {
		interval = time.Second
	}
	if batchSize < 1 {
		batchSize = 1
	}
	return &Collector{
		source:    source,
		push:      push,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Start launches the polling loop. It is a no-op if already running.
func (c *Collector) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	done := make(chan struct{})
	c.done = done

	go c.run(ctx, done)
}

// Stop cancels the loop and blocks until the final batch has been pushed.
// Safe to call when not running.
func (c *Collector) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (c *Collector) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	batch := make([]models.AccelSample, 0, c.batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		c.push(batch)
		batch = make([]models.AccelSample, 0, c.batchSize)
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case <-ticker.C:
			sample, err := c.source.Read()
			if err != nil {
				observability.CollectorReadErrors.Inc()
				log.Printf("Sensor read failed: %v", err)
				continue
			}
			batch = append(batch, sample)
			if len(batch) >= c.batchSize {
				flush()
			}
		}
	}
}
