package domain

type Tier string

const (
	TierGreen  Tier = "green"
	TierOrange Tier = "orange"
	TierTop    Tier = "top"
)

type TransactionType string

const (
	TransactionTypeEarned   TransactionType = "earned"
	TransactionTypeRedeemed TransactionType = "redeemed"
	TransactionTypeExpired  TransactionType = "expired"
)

type LoyaltyTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Points      int             `json:"points"`
	Type        TransactionType `json:"type"`
	Balance     int             `json:"balance"`
}

type ExpiringPoints struct {
	Amount int    `json:"amount"`
	Date   string `json:"date"`
}

// LoyaltyAccount is the authenticated identity. Exactly one exists per
// session; it is created by login or registration and cleared by logout.
type LoyaltyAccount struct {
	MemberID       string               `json:"memberId"`
	Tier           Tier                 `json:"tier"`
	FirstName      string               `json:"firstName"`
	LastName       string               `json:"lastName"`
	Email          string               `json:"email"`
	Points         int                  `json:"points"`
	MilesFlown     int                  `json:"milesFlown"`
	SegmentsFlown  int                  `json:"segmentsFlown"`
	TierProgress   int                  `json:"tierProgress"`
	ExpiringPoints ExpiringPoints       `json:"expiringPoints"`
	Transactions   []LoyaltyTransaction `json:"transactions"`
}
