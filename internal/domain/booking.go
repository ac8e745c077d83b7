package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PassengerType string

const (
	PassengerTypeAdult  PassengerType = "adult"
	PassengerTypeChild  PassengerType = "child"
	PassengerTypeInfant PassengerType = "infant"
)

type Passenger struct {
	ID              string        `json:"id"`
	Type            PassengerType `json:"type"`
	Title           string        `json:"title"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	DateOfBirth     string        `json:"dateOfBirth"`
	Nationality     string        `json:"nationality"`
	PassportNumber  string        `json:"passportNumber,omitempty"`
	PassportExpiry  string        `json:"passportExpiry,omitempty"`
	SeatNumber      string        `json:"seatNumber,omitempty"`
	SpecialRequests []string      `json:"specialRequests,omitempty"`
}

// Booking is created once at payment completion. Flights holds one leg,
// or two for a round trip. TotalAmount is a snapshot of the fare price at
// creation time.
type Booking struct {
	PNR              string        `json:"pnr"`
	LastName         string        `json:"lastName"`
	FirstName        string        `json:"firstName"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Flights          []Flight      `json:"flights"`
	Passengers       []Passenger   `json:"passengers"`
	Status           BookingStatus `json:"status"`
	TotalAmount      float64       `json:"totalAmount"`
	Currency         string        `json:"currency"`
	CreatedAt        time.Time     `json:"createdAt"`
	CheckInAvailable bool          `json:"checkInAvailable"`
}

// CheckInOpen reports whether online check-in is open at now: the booking
// is confirmed and the first leg departs within the given window.
func (b *Booking) CheckInOpen(now time.Time, window time.Duration) bool {
	if b.Status != BookingStatusConfirmed || len(b.Flights) == 0 {
		return false
	}
	dep := b.Flights[0].DepartureTime
	return now.Before(dep) && dep.Sub(now) <= window
}
