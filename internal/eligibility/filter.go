// Package eligibility decides which evaluated market pairs may be traded
// this cycle: profitability threshold, zero-price rejection, and game-key
// deduplication against both open positions and the current batch.
package eligibility

import (
	"sort"

	"github.com/polymix/polymix/pkg/types"
)

// Rejection reasons. Rejections are never silent; every one carries
// exactly one tag and is counted.
const (
	ReasonZeroPrice        = "zero_price"
	ReasonEdgeNonPositive  = "edge_non_positive"
	ReasonBelowThreshold   = "below_threshold"
	ReasonDuplicateOpen    = "duplicate_open"
	ReasonDuplicateInBatch = "duplicate_in_batch"
)

// Evaluation pairs a feed record with its evaluator outcome for one cycle.
type Evaluation struct {
	Record     *types.MarketPairRecord
	Result     *types.StrategyResult
	Settlement types.SettlementInfo
	Err        error
}

// Rejection records why one evaluation was excluded from execution.
type Rejection struct {
	GameKey string
	Reason  string
	Err     error
}

// Filter returns the evaluations eligible for execution, ordered by
// descending ROI, and the rejections with their reason tags.
//
// A record is eligible iff its evaluation succeeded, edge > 0, ROI is
// strictly above minROI, and its game key has neither an OPEN trade nor an
// earlier selection in this batch. Records from different categories that
// describe the same real-world event collide on the normalized game key.
func Filter(evals []Evaluation, minROI float64, openKeys map[string]bool) ([]Evaluation, []Rejection) {
	// Highest-edge opportunities first; this ordering decides execution
	// priority when capital limits bite. Sort before dedup so the best
	// duplicate wins the in-batch race.
	ordered := make([]Evaluation, len(evals))
	copy(ordered, evals)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := ordered[i].Result, ordered[j].Result
		if ri == nil || rj == nil {
			return rj == nil && ri != nil
		}
		return ri.ROIPercent > rj.ROIPercent
	})

	eligible := make([]Evaluation, 0, len(ordered))
	rejected := make([]Rejection, 0)
	seenInBatch := make(map[string]bool)

	for _, ev := range ordered {
		key := ev.Record.Key()

		reason := classify(ev, key, minROI, openKeys, seenInBatch)
		if reason != "" {
			RecordsRejectedTotal.WithLabelValues(reason).Inc()
			rejected = append(rejected, Rejection{GameKey: key, Reason: reason, Err: ev.Err})
			continue
		}

		seenInBatch[key] = true
		eligible = append(eligible, ev)
		RecordsEligibleTotal.Inc()
	}

	return eligible, rejected
}

func classify(ev Evaluation, key string, minROI float64, openKeys, seenInBatch map[string]bool) string {
	if ev.Err != nil || ev.Result == nil {
		return ReasonZeroPrice
	}
	if ev.Result.Edge <= 0 {
		return ReasonEdgeNonPositive
	}
	if ev.Result.ROIPercent <= minROI {
		return ReasonBelowThreshold
	}
	if openKeys[key] {
		return ReasonDuplicateOpen
	}
	if seenInBatch[key] {
		return ReasonDuplicateInBatch
	}
	return ""
}
