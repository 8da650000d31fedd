package stats

// HoursPerDay is the size of an hourly bucket array.
const HoursPerDay = 24

// HourlyBuckets accumulates per-hour step counts, indexed by hour of day.
type HourlyBuckets [HoursPerDay]int

// Record adds n steps to the bucket for the given hour. Out-of-range hours
// are dropped rather than panicking; the caller's wall clock owns hour
// selection.
func (b *HourlyBuckets) Record(hour, n int) {
	if hour < 0 || hour >= HoursPerDay || n <= 0 {
		return
	}
	b[hour] += n
}

// Sum returns the total steps across all buckets.
func (b HourlyBuckets) Sum() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// Peak returns the busiest hour and its count. Ties go to the earlier hour.
func (b HourlyBuckets) Peak() (hour, count int) {
	for h, v := range b {
		if v > count {
			hour, count = h, v
		}
	}
	return hour, count
}

// Merge adds the counts of other into b.
func (b *HourlyBuckets) Merge(other HourlyBuckets) {
	for h, v := range other {
		b[h] += v
	}
}
