package eligibility

import (
	"testing"

	"github.com/polymix/polymix/pkg/types"
)

func makeEval(gameKey, category string, roi float64) Evaluation {
	edge := roi // edge sign tracks roi sign for these fixtures
	return Evaluation{
		Record: &types.MarketPairRecord{GameKey: gameKey, Category: category},
		Result: &types.StrategyResult{
			SelectedStrategy: 1,
			TotalCost:        100 - edge,
			Edge:             edge,
			ROIPercent:       roi,
		},
	}
}

func keys(evals []Evaluation) []string {
	out := make([]string, len(evals))
	for i, ev := range evals {
		out[i] = ev.Record.Key()
	}
	return out
}

func TestFilter_OrdersByDescendingROI(t *testing.T) {
	evals := []Evaluation{
		makeEval("a@b", "nba", 1.5),
		makeEval("c@d", "nfl", 4.2),
		makeEval("e@f", "nhl", 2.8),
	}

	eligible, rejected := Filter(evals, 0, nil)

	if len(rejected) != 0 {
		t.Fatalf("expected no rejections, got %v", rejected)
	}
	got := keys(eligible)
	want := []string{"c@d", "e@f", "a@b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestFilter_RejectionReasons(t *testing.T) {
	tests := []struct {
		name       string
		eval       Evaluation
		minROI     float64
		openKeys   map[string]bool
		wantReason string
	}{
		{
			name: "zero-price",
			eval: Evaluation{
				Record: &types.MarketPairRecord{GameKey: "a@b"},
				Err:    &types.InputDataError{GameKey: "a@b", Err: types.ErrZeroOrInvalidPrice},
			},
			wantReason: ReasonZeroPrice,
		},
		{
			name:       "edge-non-positive",
			eval:       makeEval("a@b", "nba", -1.2),
			wantReason: ReasonEdgeNonPositive,
		},
		{
			name:       "below-threshold",
			eval:       makeEval("a@b", "nba", 0.8),
			minROI:     1.0,
			wantReason: ReasonBelowThreshold,
		},
		{
			name:       "at-threshold-is-rejected",
			eval:       makeEval("a@b", "nba", 1.0),
			minROI:     1.0,
			wantReason: ReasonBelowThreshold,
		},
		{
			name:       "duplicate-open",
			eval:       makeEval("a@b", "nba", 3.0),
			openKeys:   map[string]bool{"a@b": true},
			wantReason: ReasonDuplicateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eligible, rejected := Filter([]Evaluation{tt.eval}, tt.minROI, tt.openKeys)

			if len(eligible) != 0 {
				t.Fatal("expected record to be rejected")
			}
			if len(rejected) != 1 {
				t.Fatalf("expected one rejection, got %d", len(rejected))
			}
			if rejected[0].Reason != tt.wantReason {
				t.Errorf("expected reason %q, got %q", tt.wantReason, rejected[0].Reason)
			}
		})
	}
}

func TestFilter_DedupWithinBatchAcrossCategories(t *testing.T) {
	// Same event surfaced by two source adapters under different category
	// tags: at most one may be admitted, and it is the higher-ROI one.
	evals := []Evaluation{
		makeEval("lal@bos", "nba", 2.0),
		makeEval("lal@bos", "general", 3.5),
	}

	eligible, rejected := Filter(evals, 0, nil)

	if len(eligible) != 1 {
		t.Fatalf("expected one eligible record, got %d", len(eligible))
	}
	if eligible[0].Result.ROIPercent != 3.5 {
		t.Errorf("expected the higher-ROI duplicate to win, got ROI %.2f", eligible[0].Result.ROIPercent)
	}
	if len(rejected) != 1 || rejected[0].Reason != ReasonDuplicateInBatch {
		t.Errorf("expected one duplicate_in_batch rejection, got %v", rejected)
	}
}

func TestFilter_NormalizedKeysCollide(t *testing.T) {
	// Records without explicit game keys still collide when team codes
	// normalize to the same identity.
	a := Evaluation{
		Record: &types.MarketPairRecord{AwayCode: "LAL", HomeCode: "BOS", Category: "nba"},
		Result: &types.StrategyResult{Edge: 2, ROIPercent: 2, TotalCost: 98},
	}
	b := Evaluation{
		Record: &types.MarketPairRecord{AwayCode: "bos", HomeCode: "lal", Category: "general"},
		Result: &types.StrategyResult{Edge: 1, ROIPercent: 1, TotalCost: 99},
	}

	eligible, rejected := Filter([]Evaluation{a, b}, 0, nil)

	if len(eligible) != 1 || len(rejected) != 1 {
		t.Fatalf("expected collision, got %d eligible / %d rejected", len(eligible), len(rejected))
	}
}

func TestFilter_OpenPositionDropsResubmittedRecord(t *testing.T) {
	// A record whose game key already has an OPEN trade is filtered before
	// it can reach the ledger.
	open := map[string]bool{"lal@bos": true}
	evals := []Evaluation{
		makeEval("lal@bos", "nba", 5.0),
		makeEval("mia@nyk", "nba", 1.0),
	}

	eligible, rejected := Filter(evals, 0, open)

	if len(eligible) != 1 || eligible[0].Record.Key() != "mia@nyk" {
		t.Fatalf("expected only mia@nyk eligible, got %v", keys(eligible))
	}
	if len(rejected) != 1 || rejected[0].Reason != ReasonDuplicateOpen {
		t.Fatalf("expected duplicate_open rejection, got %v", rejected)
	}
}
