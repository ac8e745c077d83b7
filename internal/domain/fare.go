package domain

type FareType string

const (
	FareTypeBasic    FareType = "basic"
	FareTypeStandard FareType = "standard"
	FareTypeFlex     FareType = "flex"
)

type Baggage struct {
	Cabin   string `json:"cabin"`
	Checked string `json:"checked"`
}

// Fare is a priced bundle of entitlements attached to a flight selection.
// Entitlements are derived from the fare-type catalog, never stored per
// booking beyond the price snapshot.
type Fare struct {
	ID               string   `json:"id"`
	Type             FareType `json:"type"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	Features         []string `json:"features"`
	Baggage          Baggage  `json:"baggage"`
	Changeable       bool     `json:"changeable"`
	Refundable       bool     `json:"refundable"`
	SeatSelection    bool     `json:"seatSelection"`
	PriorityBoarding bool     `json:"priorityBoarding"`
	LoungeAccess     bool     `json:"loungeAccess"`
}
