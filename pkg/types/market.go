package types

import (
	"strings"
	"time"
)

// Venue identifies one of the two trading platforms being compared.
type Venue string

const (
	VenuePolymarket Venue = "polymarket"
	VenueKalshi     Venue = "kalshi"
)

// Outcome is one side of a binary market.
type Outcome string

const (
	OutcomeAway Outcome = "away"
	OutcomeHome Outcome = "home"
)

// VenuePrices holds the two outcome prices quoted by one venue,
// in cents on the dollar (0, 100].
type VenuePrices struct {
	Away float64 `json:"away"`
	Home float64 `json:"home"`
}

// PolymarketStatus is the raw lifecycle state reported by Polymarket.
// Closed is tri-state: a missing flag must never be read as settled.
type PolymarketStatus struct {
	Closed      *bool  `json:"closed,omitempty"`
	Lifecycle   string `json:"lifecycle,omitempty"`
	WinningSide string `json:"winning_side,omitempty"`
}

// KalshiStatus is the raw lifecycle state reported by Kalshi.
type KalshiStatus struct {
	Status string `json:"status,omitempty"`
	Result string `json:"result,omitempty"`
}

// MarketPairRecord is one logical event with prices from both venues.
// Produced by the market feed; everything downstream treats it as immutable.
type MarketPairRecord struct {
	GameKey    string           `json:"game_key"`
	Category   string           `json:"category"`
	AwayTeam   string           `json:"away_team"`
	HomeTeam   string           `json:"home_team"`
	AwayCode   string           `json:"away_code"`
	HomeCode   string           `json:"home_code"`
	Polymarket VenuePrices      `json:"polymarket"`
	Kalshi     VenuePrices      `json:"kalshi"`
	PolyStatus PolymarketStatus `json:"polymarket_status"`
	KalshiStat KalshiStatus     `json:"kalshi_status"`
	FirstSeen  time.Time        `json:"first_seen"`
}

// NormalizeGameKey builds the venue- and category-agnostic identity of one
// real-world event. Team codes are lowercased, separators stripped, and
// sorted so "A vs B" and "B vs A" from different upstream adapters collide.
func NormalizeGameKey(awayCode, homeCode string) string {
	a := normalizeCode(awayCode)
	h := normalizeCode(homeCode)
	if a > h {
		a, h = h, a
	}
	return a + "@" + h
}

func normalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, " ", "")
	return strings.ReplaceAll(code, "-", "")
}

// Key returns the record's dedup key, deriving it from team codes when the
// feed did not populate GameKey.
func (r *MarketPairRecord) Key() string {
	if r.GameKey != "" {
		return r.GameKey
	}
	return NormalizeGameKey(r.AwayCode, r.HomeCode)
}

// SettledVenue reports which venue, if any, considers the event final.
type SettledVenue string

const (
	SettledNone       SettledVenue = "none"
	SettledPolymarket SettledVenue = "polymarket"
	SettledKalshi     SettledVenue = "kalshi"
	SettledBoth       SettledVenue = "both"
)

// SettlementInfo is the classified settlement state of a market pair.
// Informational only: it never affects whether the pair was arbitrage
// eligible, just whether it is still actionable.
type SettlementInfo struct {
	IsSettled    bool         `json:"is_settled"`
	SettledVenue SettledVenue `json:"settled_venue"`
	StatusDetail string       `json:"status_detail,omitempty"`
}
