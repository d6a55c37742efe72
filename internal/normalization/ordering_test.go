package normalization

import (
	"testing"
	"time"
)

func TestBucketStart_AlignedToMidnight(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		interval time.Duration
		want     time.Time
	}{
		{"whole second", at(1_250), time.Second, at(1_000)},
		// 12:00:03 is 43203s after midnight; 43203 mod 7 = 6.
		{"7s from midnight", at(3_000), 7 * time.Second, at(-3_000)},
		{"first bucket of day", time.Date(2025, 6, 2, 0, 0, 5, 0, time.UTC), 7 * time.Second,
			time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucketStart(tt.ts, tt.interval); !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
