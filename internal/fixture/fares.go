package fixture

import "github.com/ibomair/appcore/internal/domain"

// FareCatalogEntry is one row of the fare-type catalog. Entitlements are
// fixed per fare type; only currency varies at build time.
type FareCatalogEntry struct {
	ID       string
	Name     string
	Price    float64
	Features []string
}

var FareCatalog = []FareCatalogEntry{
	{
		ID:    "basic",
		Name:  "Basic",
		Price: 45000,
		Features: []string{
			"20kg checked baggage",
			"Standard seat",
			"No changes allowed",
			"Non-refundable",
		},
	},
	{
		ID:    "standard",
		Name:  "Standard",
		Price: 58000,
		Features: []string{
			"20kg checked baggage",
			"Seat selection",
			"Changes with fee",
			"50% refundable",
			"Priority check-in",
		},
	},
	{
		ID:    "flex",
		Name:  "Flex",
		Price: 75000,
		Features: []string{
			"30kg checked baggage",
			"Premium seat selection",
			"Free changes",
			"Full refund",
			"Priority boarding",
			"Lounge access",
		},
	},
}

// BuildFare derives a Fare from a catalog entry. Entitlements follow the
// fare type deterministically.
func BuildFare(entry FareCatalogEntry, currency string) domain.Fare {
	fare := domain.Fare{
		ID:       entry.ID,
		Type:     domain.FareType(entry.ID),
		Name:     entry.Name,
		Price:    entry.Price,
		Currency: currency,
		Features: entry.Features,
		Baggage:  domain.Baggage{Cabin: "7kg", Checked: "20kg"},
	}
	switch fare.Type {
	case domain.FareTypeStandard:
		fare.Changeable = true
		fare.SeatSelection = true
	case domain.FareTypeFlex:
		fare.Baggage.Checked = "30kg"
		fare.Changeable = true
		fare.Refundable = true
		fare.SeatSelection = true
		fare.PriorityBoarding = true
		fare.LoungeAccess = true
	}
	return fare
}

func FareCatalogEntryByID(id string) (FareCatalogEntry, bool) {
	for _, e := range FareCatalog {
		if e.ID == id {
			return e, true
		}
	}
	return FareCatalogEntry{}, false
}
