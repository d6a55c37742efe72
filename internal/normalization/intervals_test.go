package normalization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"price-impact-report/internal/domain"
)

func event(sec int, strategy string, active bool) *domain.StrategyEvent {
	return &domain.StrategyEvent{Timestamp: t0.Add(time.Duration(sec) * time.Second), Strategy: strategy, Active: active}
}

func TestBuildStrategyIntervals_TrailingOpenClosesAtGlobalMax(t *testing.T) {
	events := []*domain.StrategyEvent{
		event(10, "LadderLiftStrategy", true),
		event(20, "LadderLiftStrategy", false),
		event(50, "LadderLiftStrategy", true),
		event(30, "DripFlipStrategy", true),
		event(95, "DripFlipStrategy", false),
	}

	intervals, dropped := BuildStrategyIntervals(events)
	require.Empty(t, dropped)
	require.Len(t, intervals, 3)

	// Ordered by strategy name, then start.
	assert.Equal(t, "DripFlipStrategy", intervals[0].Strategy)
	assert.Equal(t, t0.Add(30*time.Second), intervals[0].Start)
	assert.Equal(t, t0.Add(95*time.Second), intervals[0].End)

	assert.Equal(t, "LadderLiftStrategy", intervals[1].Strategy)
	assert.Equal(t, t0.Add(10*time.Second), intervals[1].Start)
	assert.Equal(t, t0.Add(20*time.Second), intervals[1].End)

	// Open activate at t=50 ends at the latest event of any strategy (t=95).
	assert.Equal(t, "LadderLiftStrategy", intervals[2].Strategy)
	assert.Equal(t, t0.Add(50*time.Second), intervals[2].Start)
	assert.Equal(t, t0.Add(95*time.Second), intervals[2].End)
}

func TestBuildStrategyIntervals_UnmatchedDeactivateDropped(t *testing.T) {
	events := []*domain.StrategyEvent{
		event(5, "DripFlipStrategy", false),
		event(10, "DripFlipStrategy", true),
		event(20, "DripFlipStrategy", false),
		event(25, "DripFlipStrategy", false),
	}

	intervals, dropped := BuildStrategyIntervals(events)
	require.Len(t, intervals, 1)
	assert.Equal(t, t0.Add(10*time.Second), intervals[0].Start)
	assert.Equal(t, t0.Add(20*time.Second), intervals[0].End)

	require.Len(t, dropped, 2)
	assert.Equal(t, t0.Add(5*time.Second), dropped[0].Timestamp)
	assert.Equal(t, t0.Add(25*time.Second), dropped[1].Timestamp)
}

func TestBuildStrategyIntervals_DoubleActivateIgnored(t *testing.T) {
	events := []*domain.StrategyEvent{
		event(10, "LadderLiftStrategy", true),
		event(12, "LadderLiftStrategy", true),
		event(20, "LadderLiftStrategy", false),
	}

	intervals, dropped := BuildStrategyIntervals(events)
	assert.Empty(t, dropped)
	require.Len(t, intervals, 1)
	assert.Equal(t, t0.Add(10*time.Second), intervals[0].Start)
}

func TestBuildStrategyIntervals_NonOverlappingAndOrdered(t *testing.T) {
	events := []*domain.StrategyEvent{
		event(70, "LadderLiftStrategy", false),
		event(10, "LadderLiftStrategy", true),
		event(60, "LadderLiftStrategy", true),
		event(20, "LadderLiftStrategy", false),
		event(40, "LadderLiftStrategy", true),
		event(45, "LadderLiftStrategy", false),
	}

	intervals, _ := BuildStrategyIntervals(events)
	require.Len(t, intervals, 3)
	for i := 1; i < len(intervals); i++ {
		assert.False(t, intervals[i].Start.Before(intervals[i-1].End), "interval %d overlaps its predecessor", i)
	}
}

func TestBuildStrategyIntervals_Empty(t *testing.T) {
	intervals, dropped := BuildStrategyIntervals(nil)
	assert.Nil(t, intervals)
	assert.Nil(t, dropped)
}

func TestStrategyNames(t *testing.T) {
	intervals := []*domain.StrategyInterval{
		{Strategy: "B"}, {Strategy: "A"}, {Strategy: "B"},
	}
	assert.Equal(t, []string{"B", "A"}, StrategyNames(intervals))
}
