// Package fixture holds the static reference tables the app core reads:
// airports, the flight schedule, the fare catalog, destinations, news and
// travel advisories. The core never mutates them.
package fixture

import (
	"time"

	"github.com/ibomair/appcore/internal/domain"
)

var Airports = []domain.Airport{
	{Code: "UYO", Name: "Akwa Ibom International Airport", City: "Uyo", Country: "Nigeria", Timezone: "WAT"},
	{Code: "ABV", Name: "Nnamdi Azikiwe International Airport", City: "Abuja", Country: "Nigeria", Timezone: "WAT"},
	{Code: "CBQ", Name: "Margaret Ekpo International Airport", City: "Calabar", Country: "Nigeria", Timezone: "WAT"},
	{Code: "ENU", Name: "Akanu Ibiam International Airport", City: "Enugu", Country: "Nigeria", Timezone: "WAT"},
	{Code: "LOS", Name: "Murtala Muhammed International Airport", City: "Lagos", Country: "Nigeria", Timezone: "WAT"},
	{Code: "ACC", Name: "Kotoka International Airport", City: "Accra", Country: "Ghana", Timezone: "GMT"},
}

func AirportByCode(code string) (domain.Airport, bool) {
	for _, a := range Airports {
		if a.Code == code {
			return a, true
		}
	}
	return domain.Airport{}, false
}

type scheduleEntry struct {
	id       string
	from     string
	to       string
	depHour  int
	depMin   int
	arrHour  int
	arrMin   int
	duration string
	aircraft string
	gate     string
	terminal string
}

// The daily schedule. Departure and arrival times are instantiated onto a
// concrete day by FlightsOn.
var schedule = []scheduleEntry{
	{id: "IB101", from: "UYO", to: "LOS", depHour: 8, depMin: 0, arrHour: 9, arrMin: 15, duration: "1h 15m", aircraft: "CRJ 900", gate: "A2", terminal: "1"},
	{id: "IB201", from: "UYO", to: "ABV", depHour: 10, depMin: 30, arrHour: 11, arrMin: 45, duration: "1h 15m", aircraft: "CRJ 900", gate: "B1", terminal: "1"},
	{id: "IB301", from: "LOS", to: "ACC", depHour: 14, depMin: 0, arrHour: 15, arrMin: 30, duration: "1h 30m", aircraft: "A220-300", gate: "C3", terminal: "2"},
	{id: "IB102", from: "LOS", to: "UYO", depHour: 16, depMin: 30, arrHour: 17, arrMin: 45, duration: "1h 15m", aircraft: "CRJ 900", gate: "D4", terminal: "2"},
	{id: "IB202", from: "ABV", to: "UYO", depHour: 13, depMin: 0, arrHour: 14, arrMin: 15, duration: "1h 15m", aircraft: "CRJ 900", gate: "A7", terminal: "1"},
	{id: "IB302", from: "ACC", to: "LOS", depHour: 17, depMin: 30, arrHour: 19, arrMin: 0, duration: "1h 30m", aircraft: "A220-300", gate: "B2", terminal: "1"},
}

// FlightsOn returns the schedule instantiated for the given day, in the
// day's local location.
func FlightsOn(day time.Time) []domain.Flight {
	flights := make([]domain.Flight, 0, len(schedule))
	for _, e := range schedule {
		from, _ := AirportByCode(e.from)
		to, _ := AirportByCode(e.to)
		dep := time.Date(day.Year(), day.Month(), day.Day(), e.depHour, e.depMin, 0, 0, day.Location())
		arr := time.Date(day.Year(), day.Month(), day.Day(), e.arrHour, e.arrMin, 0, 0, day.Location())
		flights = append(flights, domain.Flight{
			ID:            e.id,
			FlightNumber:  e.id,
			Airline:       "Ibom Air",
			From:          from,
			To:            to,
			DepartureTime: dep,
			ArrivalTime:   arr,
			Duration:      e.duration,
			Aircraft:      e.aircraft,
			Status:        domain.FlightStatusScheduled,
			Gate:          e.gate,
			Terminal:      e.terminal,
		})
	}
	return flights
}

// FlightByNumber looks up a flight in the schedule for the given day.
func FlightByNumber(number string, day time.Time) (domain.Flight, bool) {
	for _, f := range FlightsOn(day) {
		if f.FlightNumber == number {
			return f, true
		}
	}
	return domain.Flight{}, false
}
