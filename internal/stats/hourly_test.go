package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourlyBucketsRecordAndSum(t *testing.T) {
	var b HourlyBuckets

	b.Record(9, 1)
	b.Record(9, 1)
	b.Record(17, 3)

	assert.Equal(t, 2, b[9])
	assert.Equal(t, 3, b[17])
	assert.Equal(t, 5, b.Sum())
}

func TestHourlyBucketsIgnoresInvalid(t *testing.T) {
	var b HourlyBuckets

	b.Record(-1, 1)
	b.Record(24, 1)
	b.Record(5, 0)
	b.Record(5, -10)

	assert.Equal(t, 0, b.Sum())
}

func TestHourlyBucketsPeak(t *testing.T) {
	var b HourlyBuckets
	b.Record(8, 10)
	b.Record(18, 40)
	b.Record(12, 40)

	hour, count := b.Peak()
	assert.Equal(t, 12, hour) // tie goes to the earlier hour
	assert.Equal(t, 40, count)
}

func TestHourlyBucketsMerge(t *testing.T) {
	var a, b HourlyBuckets
	a.Record(7, 2)
	b.Record(7, 3)
	b.Record(20, 5)

	a.Merge(b)
	assert.Equal(t, 5, a[7])
	assert.Equal(t, 5, a[20])
	assert.Equal(t, 10, a.Sum())
}

func TestMeanMaxSum(t *testing.T) {
	vals := []float64{2, 4, 6}
	assert.Equal(t, 4.0, Mean(vals))
	assert.Equal(t, 6.0, Max(vals))
	assert.Equal(t, 12.0, Sum(vals))

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Max(nil))
	assert.Equal(t, 0.0, Sum(nil))
}

func TestStdDev(t *testing.T) {
	assert.InDelta(t, 1.0, StdDev([]float64{1, 2, 3}), 1e-9)
	assert.Equal(t, 0.0, StdDev([]float64{5}))
}
