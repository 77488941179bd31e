package strategy

import (
	"errors"

	"github.com/polymix/polymix/pkg/types"
)

// Fees holds the per-venue fee rates and the shared slippage allowance
// applied to every quoted price.
type Fees struct {
	PolymarketFee float64
	KalshiFee     float64
	Slippage      float64
}

// DefaultFees are the shared assumptions used when none are configured:
// 2% Polymarket, 7% Kalshi, 0.5% slippage.
func DefaultFees() Fees {
	return Fees{
		PolymarketFee: 0.02,
		KalshiFee:     0.07,
		Slippage:      0.005,
	}
}

// Effective returns the fee-and-slippage-adjusted cost of a raw price
// quoted on the given venue, in cents.
func (f Fees) Effective(venue types.Venue, raw float64) float64 {
	rate := f.PolymarketFee
	if venue == types.VenueKalshi {
		rate = f.KalshiFee
	}
	return raw * (1 + rate + f.Slippage)
}

// candidate is one cross-venue pairing of mutually exclusive outcomes.
// Only cross-venue candidates are ever constructed, so a same-venue hedge
// cannot be selected by any code path.
type candidate struct {
	number  int
	awayLeg types.Leg
	homeLeg types.Leg
}

func (c candidate) totalCost() float64 {
	return c.awayLeg.EffectivePrice + c.homeLeg.EffectivePrice
}

// Evaluate computes the cheaper of the two cross-venue hedging strategies
// for one market pair. Prices are cents in (0, 100].
//
// A result is returned regardless of the sign of the edge: an unprofitable
// pair is a correct evaluation, not an error, and the eligibility filter
// owns the profitability decision. Only a non-positive input price rejects.
func Evaluate(polyAway, polyHome, kalshiAway, kalshiHome float64, fees Fees) (*types.StrategyResult, error) {
	for _, p := range []struct {
		field string
		price float64
	}{
		{"polymarket_away", polyAway},
		{"polymarket_home", polyHome},
		{"kalshi_away", kalshiAway},
		{"kalshi_home", kalshiHome},
	} {
		if p.price <= 0 {
			EvaluationsRejectedTotal.WithLabelValues("zero_price").Inc()
			return nil, &types.InputDataError{Field: p.field, Err: types.ErrZeroOrInvalidPrice}
		}
	}

	// Strategy 1: Polymarket away + Kalshi home.
	s1 := candidate{
		number: 1,
		awayLeg: types.Leg{
			Venue:          types.VenuePolymarket,
			Outcome:        types.OutcomeAway,
			RawPrice:       polyAway,
			EffectivePrice: fees.Effective(types.VenuePolymarket, polyAway),
		},
		homeLeg: types.Leg{
			Venue:          types.VenueKalshi,
			Outcome:        types.OutcomeHome,
			RawPrice:       kalshiHome,
			EffectivePrice: fees.Effective(types.VenueKalshi, kalshiHome),
		},
	}

	// Strategy 2: Kalshi away + Polymarket home.
	s2 := candidate{
		number: 2,
		awayLeg: types.Leg{
			Venue:          types.VenueKalshi,
			Outcome:        types.OutcomeAway,
			RawPrice:       kalshiAway,
			EffectivePrice: fees.Effective(types.VenueKalshi, kalshiAway),
		},
		homeLeg: types.Leg{
			Venue:          types.VenuePolymarket,
			Outcome:        types.OutcomeHome,
			RawPrice:       polyHome,
			EffectivePrice: fees.Effective(types.VenuePolymarket, polyHome),
		},
	}

	// Ties prefer strategy 1 so selection is deterministic.
	selected := s1
	if s2.totalCost() < s1.totalCost() {
		selected = s2
	}

	totalCost := selected.totalCost()
	edge := 100 - totalCost
	roi := edge / totalCost * 100

	EvaluationsTotal.Inc()
	EdgeCents.Observe(edge)

	return &types.StrategyResult{
		SelectedStrategy: selected.number,
		TotalCost:        totalCost,
		Edge:             edge,
		ROIPercent:       roi,
		AwayLeg:          selected.awayLeg,
		HomeLeg:          selected.homeLeg,
		Strategy1Cost:    s1.totalCost(),
		Strategy2Cost:    s2.totalCost(),
	}, nil
}

// EvaluateRecord evaluates one feed record with the configured fees.
func EvaluateRecord(rec *types.MarketPairRecord, fees Fees) (*types.StrategyResult, error) {
	res, err := Evaluate(
		rec.Polymarket.Away,
		rec.Polymarket.Home,
		rec.Kalshi.Away,
		rec.Kalshi.Home,
		fees,
	)
	if err != nil {
		var inputErr *types.InputDataError
		if errors.As(err, &inputErr) {
			inputErr.GameKey = rec.Key()
		}
		return nil, err
	}
	return res, nil
}
