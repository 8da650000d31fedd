package motion

import (
	"math"
	"time"
)

// Default tuning for walking detection. The threshold is on a
// normalized-gravity scale where 1.0 is the device at rest.
const (
	DefaultThreshold       = 1.2
	DefaultMinStepInterval = 300 * time.Millisecond
)

// Sample is a single 3-axis accelerometer reading. Units are whatever the
// device reports; only the magnitude relative to the threshold matters.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Magnitude returns the Euclidean norm of the acceleration vector.
func (s Sample) Magnitude() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// Config holds the detector tuning parameters.
type Config struct {
	Threshold       float64       // magnitude above which a crossing counts
	MinStepInterval time.Duration // debounce window between accepted steps
}

// withDefaults fills zero fields with the default tuning.
func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if c.MinStepInterval <= 0 {
		c.MinStepInterval = DefaultMinStepInterval
	}
	return c
}

// State is the detector baseline carried between samples. The zero value
// is a fresh, unprimed state.
type State struct {
	PrevMagnitude float64
	LastStepAt    time.Time
	Primed        bool
}

// Detect processes one sample against the current state and reports whether
// it completes a step. A step is an upward crossing of the threshold
// (previous magnitude at or below, current above) that falls outside the
// debounce window of the last accepted step.
//
// The very first sample only seeds the baseline and never registers a step,
// so a session that starts mid-stride does not count a phantom step.
// Every sample updates the baseline regardless of the outcome.
func Detect(cfg Config, st State, s Sample, now time.Time) (bool, State) {
	cfg = cfg.withDefaults()
	mag := s.Magnitude()

	if !st.Primed {
		return false, State{PrevMagnitude: mag, Primed: true}
	}

	step := mag > cfg.Threshold &&
		st.PrevMagnitude <= cfg.Threshold &&
		now.Sub(st.LastStepAt) > cfg.MinStepInterval

	st.PrevMagnitude = mag
	if step {
		st.LastStepAt = now
	}
	return step, st
}

// Detector wraps Detect with owned state and a running step count.
// It is not safe for concurrent use; callers serialize sample delivery.
type Detector struct {
	cfg   Config
	state State
	steps int
}

// NewDetector creates a detector with the given tuning. Zero fields in cfg
// fall back to the defaults.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: cfg.withDefaults()}
}

// Feed processes one sample and reports whether it registered a step.
func (d *Detector) Feed(s Sample, now time.Time) bool {
	step, st := Detect(d.cfg, d.state, s, now)
	d.state = st
	if step {
		d.steps++
	}
	return step
}

// Steps returns the number of steps registered since the last reset.
func (d *Detector) Steps() int {
	return d.steps
}

// Reset clears the step count and the baseline for a new session.
func (d *Detector) Reset() {
	d.state = State{}
	d.steps = 0
}
