package settlement

import (
	"testing"

	"github.com/polymix/polymix/pkg/types"
)

func boolPtr(b bool) *bool { return &b }

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		poly       types.PolymarketStatus
		kalshi     types.KalshiStatus
		wantSettle bool
		wantVenue  types.SettledVenue
	}{
		{
			name:       "neither-settled",
			poly:       types.PolymarketStatus{Closed: boolPtr(false)},
			kalshi:     types.KalshiStatus{Status: "active"},
			wantSettle: false,
			wantVenue:  types.SettledNone,
		},
		{
			name:       "polymarket-closed",
			poly:       types.PolymarketStatus{Closed: boolPtr(true)},
			kalshi:     types.KalshiStatus{Status: "active"},
			wantSettle: true,
			wantVenue:  types.SettledPolymarket,
		},
		{
			name:       "kalshi-finalized",
			poly:       types.PolymarketStatus{Closed: boolPtr(false)},
			kalshi:     types.KalshiStatus{Status: "finalized"},
			wantSettle: true,
			wantVenue:  types.SettledKalshi,
		},
		{
			name:       "kalshi-settled",
			poly:       types.PolymarketStatus{},
			kalshi:     types.KalshiStatus{Status: "settled"},
			wantSettle: true,
			wantVenue:  types.SettledKalshi,
		},
		{
			name:       "kalshi-settled-mixed-case",
			poly:       types.PolymarketStatus{},
			kalshi:     types.KalshiStatus{Status: " Finalized "},
			wantSettle: true,
			wantVenue:  types.SettledKalshi,
		},
		{
			name:       "both-settled",
			poly:       types.PolymarketStatus{Closed: boolPtr(true)},
			kalshi:     types.KalshiStatus{Status: "settled", Result: "yes"},
			wantSettle: true,
			wantVenue:  types.SettledBoth,
		},
		{
			name:       "missing-fields-read-as-active",
			poly:       types.PolymarketStatus{},
			kalshi:     types.KalshiStatus{},
			wantSettle: false,
			wantVenue:  types.SettledNone,
		},
		{
			name:       "unknown-kalshi-status-reads-as-active",
			poly:       types.PolymarketStatus{},
			kalshi:     types.KalshiStatus{Status: "determined"},
			wantSettle: false,
			wantVenue:  types.SettledNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.poly, tt.kalshi)

			if info.IsSettled != tt.wantSettle {
				t.Errorf("expected IsSettled=%v, got %v", tt.wantSettle, info.IsSettled)
			}
			if info.SettledVenue != tt.wantVenue {
				t.Errorf("expected venue %s, got %s", tt.wantVenue, info.SettledVenue)
			}
			if info.IsSettled && info.StatusDetail == "" {
				t.Error("expected status detail for a settled pair")
			}
		})
	}
}

func TestClassifyRecord(t *testing.T) {
	rec := &types.MarketPairRecord{
		PolyStatus: types.PolymarketStatus{Closed: boolPtr(true)},
		KalshiStat: types.KalshiStatus{Status: "active"},
	}

	info := ClassifyRecord(rec)
	if !info.IsSettled || info.SettledVenue != types.SettledPolymarket {
		t.Errorf("unexpected classification: %+v", info)
	}
}
