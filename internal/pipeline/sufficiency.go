package pipeline

import (
	"fmt"

	"price-impact-report/internal/domain"
	"price-impact-report/internal/ingestion"
	"price-impact-report/internal/normalization"
)

// SufficiencyCheck represents one data sufficiency criterion.
type SufficiencyCheck struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// SufficiencyResult contains all checks for one run.
// Failed checks are reported but never stop the report from being written.
type SufficiencyResult struct {
	Checks  []SufficiencyCheck
	AllPass bool
}

// Failed returns the checks that did not pass.
func (r *SufficiencyResult) Failed() []SufficiencyCheck {
	var failed []SufficiencyCheck
	for _, c := range r.Checks {
		if !c.Pass {
			failed = append(failed, c)
		}
	}
	return failed
}

// RunData holds the parsed logs of one run.
type RunData struct {
	Book   *ingestion.BookLog
	Trades []*domain.Trade
	Stats  []*domain.StatsRecord
	Events []*domain.StrategyEvent
}

// CheckSufficiency tells whether every dashboard panel has something to show.
func CheckSufficiency(data *RunData, agg *normalization.Result) *SufficiencyResult {
	result := &SufficiencyResult{AllPass: true}

	var snapshots int
	if data.Book != nil {
		snapshots = len(data.Book.Snapshots)
	}
	var defined int
	for _, p := range agg.Imbalance {
		if p.Value != nil {
			defined++
		}
	}

	result.add(atLeastOne("trades", len(data.Trades)))
	result.add(atLeastOne("book_snapshots", snapshots))
	result.add(atLeastOne("defined_imbalance_points", defined))
	result.add(atLeastOne("stats_rows", len(data.Stats)))
	result.add(SufficiencyCheck{
		Name:      "unmatched_deactivates",
		Threshold: "0",
		Actual:    fmt.Sprintf("%d", len(agg.DroppedEvents)),
		Pass:      len(agg.DroppedEvents) == 0,
	})
	return result
}

func (r *SufficiencyResult) add(c SufficiencyCheck) {
	r.Checks = append(r.Checks, c)
	if !c.Pass {
		r.AllPass = false
	}
}

func atLeastOne(name string, n int) SufficiencyCheck {
	return SufficiencyCheck{
		Name:      name,
		Threshold: ">= 1",
		Actual:    fmt.Sprintf("%d", n),
		Pass:      n >= 1,
	}
}
