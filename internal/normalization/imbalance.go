package normalization

import "price-impact-report/internal/domain"

// GenerateImbalanceSeries derives the order book imbalance of every snapshot.
// Snapshots with no quantity on either side yield a nil value.
func GenerateImbalanceSeries(snapshots []*domain.BookSnapshot) []*domain.ImbalancePoint {
	if len(snapshots) == 0 {
		return nil
	}

	result := make([]*domain.ImbalancePoint, len(snapshots))
	for i, s := range snapshots {
		result[i] = &domain.ImbalancePoint{
			Timestamp: s.Timestamp,
			Value:     s.Imbalance(),
		}
	}
	return result
}
