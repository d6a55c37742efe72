package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategyEvents(t *testing.T) {
	log := strings.Join([]string{
		"ts,strategy,event",
		"2025-06-01T12:00:10Z,LadderLiftStrategy,1",
		"2025-06-01T12:00:20Z,LadderLiftStrategy,0",
	}, "\n")

	events, err := ParseStrategyEvents(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "LadderLiftStrategy", events[0].Strategy)
	assert.True(t, events[0].Active)
	assert.False(t, events[1].Active)
}

func TestParseStrategyEvents_HeaderOnly(t *testing.T) {
	events, err := ParseStrategyEvents(strings.NewReader("ts,strategy,event\n"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseStrategyEvents_Errors(t *testing.T) {
	cases := map[string]string{
		"event":    "ts,strategy,event\n2025-06-01T12:00:10Z,DripFlipStrategy,2\n",
		"strategy": "ts,strategy,event\n2025-06-01T12:00:10Z,,1\n",
		"ts":       "ts,strategy,event\nnot-a-time,DripFlipStrategy,1\n",
	}

	for field, log := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := ParseStrategyEvents(strings.NewReader(log))
			require.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, field, pe.Field)
		})
	}
}
