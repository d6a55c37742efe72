package normalization

import (
	"sort"
	"time"

	"price-impact-report/internal/domain"
)

// maxDenseBuckets bounds zero-filling. A wider range, such as a stray default
// timestamp in the trades file, yields only the buckets that hold trades.
const maxDenseBuckets = 1 << 20

// GenerateVolumeBuckets sums traded quantity per side into buckets of the given interval.
//
// Buckets holding trades are accumulated sparsely in time order. When the range from
// the first to the last bucket spans at most maxDenseBuckets, the gaps are filled with
// zero buckets; a bucket with no trades on a side holds zero for that side.
func GenerateVolumeBuckets(buys, sells []*domain.Trade, interval time.Duration) []*domain.VolumeBucket {
	if interval <= 0 || len(buys)+len(sells) == 0 {
		return nil
	}

	type sided struct {
		ts   time.Time
		qty  int64
		sell bool
	}
	fills := make([]sided, 0, len(buys)+len(sells))
	for _, tr := range buys {
		fills = append(fills, sided{ts: tr.Timestamp, qty: tr.Quantity})
	}
	for _, tr := range sells {
		fills = append(fills, sided{ts: tr.Timestamp, qty: tr.Quantity, sell: true})
	}
	sort.SliceStable(fills, func(i, j int) bool {
		return fills[i].ts.Before(fills[j].ts)
	})

	var occupied []*domain.VolumeBucket
	var current *domain.VolumeBucket
	for _, f := range fills {
		start := bucketStart(f.ts, interval)
		if current == nil || !start.Equal(current.Start) {
			current = &domain.VolumeBucket{Start: start}
			occupied = append(occupied, current)
		}
		if f.sell {
			current.SellVolume += f.qty
		} else {
			current.BuyVolume += f.qty
		}
	}

	first, last := occupied[0].Start, occupied[len(occupied)-1].Start
	// Sub saturates for ranges beyond ~292 years, which also lands here.
	if last.Sub(first)/interval >= maxDenseBuckets {
		return occupied
	}
	return zeroFill(occupied, interval)
}

// zeroFill inserts empty buckets between consecutive occupied buckets.
func zeroFill(occupied []*domain.VolumeBucket, interval time.Duration) []*domain.VolumeBucket {
	buckets := make([]*domain.VolumeBucket, 0, len(occupied))
	for i, b := range occupied {
		if i > 0 {
			next := bucketStart(occupied[i-1].Start.Add(interval), interval)
			for next.Before(b.Start) {
				buckets = append(buckets, &domain.VolumeBucket{Start: next})
				next = bucketStart(next.Add(interval), interval)
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// MaxSideVolume returns the largest per-bucket volume of either side.
func MaxSideVolume(buckets []*domain.VolumeBucket) int64 {
	var peak int64
	for _, b := range buckets {
		if b.BuyVolume > peak {
			peak = b.BuyVolume
		}
		if b.SellVolume > peak {
			peak = b.SellVolume
		}
	}
	return peak
}
