package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatasetSummary(t *testing.T) {
	s := sampleDataset().Summary()

	assert.Equal(t, 2, s.CandleCount)
	assert.Equal(t, 2, s.VolumeBuckets)
	assert.Equal(t, 1, s.StatsCount)
	assert.Equal(t, 2, s.IntervalCount)
	assert.Equal(t, 2, s.Strategies)
	assert.Equal(t, t0, s.Start)
	assert.Equal(t, t0.Add(5*time.Second), s.End)
	assert.Equal(t, 5*time.Second, s.Duration())
}

func TestDatasetSummary_Empty(t *testing.T) {
	s := (&Dataset{}).Summary()
	assert.True(t, s.Start.IsZero())
	assert.Zero(t, s.Duration())
}
