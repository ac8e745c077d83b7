package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusLanded    FlightStatus = "landed"
	FlightStatusCancelled FlightStatus = "cancelled"
	FlightStatusDelayed   FlightStatus = "delayed"
)

// Airport is immutable reference data keyed by its 3-letter IATA code.
type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type Flight struct {
	ID            string       `json:"id"`
	FlightNumber  string       `json:"flightNumber"`
	Airline       string       `json:"airline"`
	From          Airport      `json:"from"`
	To            Airport      `json:"to"`
	DepartureTime time.Time    `json:"departureTime"`
	ArrivalTime   time.Time    `json:"arrivalTime"`
	Duration      string       `json:"duration"`
	Aircraft      string       `json:"aircraft"`
	Status        FlightStatus `json:"status"`
	Gate          string       `json:"gate,omitempty"`
	Terminal      string       `json:"terminal,omitempty"`
}
