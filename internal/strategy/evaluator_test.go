package strategy

import (
	"errors"
	"math"
	"testing"

	"github.com/polymix/polymix/pkg/types"
)

func defaultTestFees() Fees {
	return Fees{PolymarketFee: 0.02, KalshiFee: 0.07, Slippage: 0.005}
}

func TestEvaluate_SelectsCheaperCrossVenueStrategy(t *testing.T) {
	// polyAway=45, polyHome=50, kalshiAway=55, kalshiHome=48:
	// strategy 1 = 45*1.025 + 48*1.075 = 97.725
	// strategy 2 = 55*1.075 + 50*1.025 = 110.375
	res, err := Evaluate(45, 50, 55, 48, defaultTestFees())
	if err != nil {
		t.Fatalf("expected result, got error %v", err)
	}

	if res.SelectedStrategy != 1 {
		t.Errorf("expected strategy 1, got %d", res.SelectedStrategy)
	}
	if math.Abs(res.TotalCost-97.725) > 0.01 {
		t.Errorf("expected total cost ~97.72, got %.4f", res.TotalCost)
	}
	if math.Abs(res.Edge-2.275) > 0.01 {
		t.Errorf("expected edge ~2.28, got %.4f", res.Edge)
	}
	if math.Abs(res.ROIPercent-2.33) > 0.01 {
		t.Errorf("expected ROI ~2.33%%, got %.4f", res.ROIPercent)
	}
	if res.AwayLeg.Venue != types.VenuePolymarket || res.HomeLeg.Venue != types.VenueKalshi {
		t.Errorf("expected polymarket-away/kalshi-home legs, got %s/%s",
			res.AwayLeg.Venue, res.HomeLeg.Venue)
	}
}

func TestEvaluate_NegativeEdgeStillReturnsResult(t *testing.T) {
	// Prices within 2% of each other: both strategies cost > 100 after fees.
	res, err := Evaluate(50, 50, 50.5, 50.5, defaultTestFees())
	if err != nil {
		t.Fatalf("expected result, got error %v", err)
	}

	if res.Edge > 0 {
		t.Errorf("expected non-positive edge, got %.4f", res.Edge)
	}
	if res.TotalCost <= 100 {
		t.Errorf("expected total cost above 100, got %.4f", res.TotalCost)
	}
}

func TestEvaluate_RejectsZeroAndNegativePrices(t *testing.T) {
	tests := []struct {
		name      string
		prices    [4]float64
		wantField string
	}{
		{"kalshi-home-zero", [4]float64{45, 50, 55, 0}, "kalshi_home"},
		{"poly-away-zero", [4]float64{0, 50, 55, 48}, "polymarket_away"},
		{"poly-home-negative", [4]float64{45, -1, 55, 48}, "polymarket_home"},
		{"all-zero", [4]float64{0, 0, 0, 0}, "polymarket_away"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.prices[0], tt.prices[1], tt.prices[2], tt.prices[3], defaultTestFees())
			if res != nil {
				t.Fatal("expected no result for invalid price")
			}

			var inputErr *types.InputDataError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InputDataError, got %v", err)
			}
			if inputErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, inputErr.Field)
			}
			if !errors.Is(err, types.ErrZeroOrInvalidPrice) {
				t.Error("expected error to wrap ErrZeroOrInvalidPrice")
			}
		})
	}
}

func TestEvaluate_LegsAlwaysCrossVenue(t *testing.T) {
	// Sweep a grid of valid quadruples; the selected strategy's legs must
	// reference two distinct venues in every case.
	prices := []float64{1, 25, 48, 50, 52, 75, 100}

	for _, pa := range prices {
		for _, ph := range prices {
			for _, ka := range prices {
				for _, kh := range prices {
					res, err := Evaluate(pa, ph, ka, kh, defaultTestFees())
					if err != nil {
						t.Fatalf("unexpected error for (%v,%v,%v,%v): %v", pa, ph, ka, kh, err)
					}
					if res.AwayLeg.Venue == res.HomeLeg.Venue {
						t.Fatalf("same-venue legs selected for (%v,%v,%v,%v)", pa, ph, ka, kh)
					}
					if res.AwayLeg.Outcome != types.OutcomeAway || res.HomeLeg.Outcome != types.OutcomeHome {
						t.Fatalf("legs do not cover both outcomes for (%v,%v,%v,%v)", pa, ph, ka, kh)
					}
				}
			}
		}
	}
}

func TestEvaluate_SelectedCostNeverExceedsAlternative(t *testing.T) {
	prices := []float64{5, 33, 47, 60, 90}

	for _, pa := range prices {
		for _, ph := range prices {
			for _, ka := range prices {
				for _, kh := range prices {
					res, err := Evaluate(pa, ph, ka, kh, defaultTestFees())
					if err != nil {
						t.Fatal(err)
					}

					other := res.Strategy2Cost
					if res.SelectedStrategy == 2 {
						other = res.Strategy1Cost
					}
					if res.TotalCost > other {
						t.Fatalf("selected cost %.4f exceeds alternative %.4f", res.TotalCost, other)
					}
				}
			}
		}
	}
}

func TestEvaluate_TieBreaksToStrategyOne(t *testing.T) {
	// Symmetric quadruple: both strategies cost the same.
	res, err := Evaluate(50, 50, 50, 50, Fees{PolymarketFee: 0.05, KalshiFee: 0.05, Slippage: 0})
	if err != nil {
		t.Fatal(err)
	}
	if res.SelectedStrategy != 1 {
		t.Errorf("expected tie to prefer strategy 1, got %d", res.SelectedStrategy)
	}
}

func TestEvaluateRecord_TagsGameKey(t *testing.T) {
	rec := &types.MarketPairRecord{
		AwayCode:   "LAL",
		HomeCode:   "BOS",
		Polymarket: types.VenuePrices{Away: 45, Home: 50},
		Kalshi:     types.VenuePrices{Away: 55, Home: 0},
	}

	_, err := EvaluateRecord(rec, defaultTestFees())

	var inputErr *types.InputDataError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputDataError, got %v", err)
	}
	if inputErr.GameKey != rec.Key() {
		t.Errorf("expected game key %q, got %q", rec.Key(), inputErr.GameKey)
	}
}
