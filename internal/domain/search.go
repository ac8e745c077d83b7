package domain

import "time"

type TripType string

const (
	TripTypeOneWay    TripType = "oneWay"
	TripTypeRoundTrip TripType = "roundTrip"
	TripTypeMultiCity TripType = "multiCity"
)

type CabinClass string

const (
	CabinClassEconomy        CabinClass = "economy"
	CabinClassPremiumEconomy CabinClass = "premiumEconomy"
	CabinClassBusiness       CabinClass = "business"
)

type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// SearchParams describes one search request. ReturnDate is set only for
// round trips.
type SearchParams struct {
	TripType   TripType        `json:"tripType"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	DepartDate time.Time       `json:"departDate"`
	ReturnDate *time.Time      `json:"returnDate,omitempty"`
	Passengers PassengerCounts `json:"passengers"`
	CabinClass CabinClass      `json:"cabinClass"`
	Currency   string          `json:"currency"`
}
