// Package bookingflow carries a user through the search, flight, fare and
// payment pipeline and retains completed bookings. The persisted booking
// list under its fixed key is owned exclusively by this store.
package bookingflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/kvstore"
)

var (
	// ErrNoFlightSelected rejects a fare selection before any flight has
	// been chosen for the current flow instance.
	ErrNoFlightSelected = errors.New("no flight selected")
	// ErrDuplicateBooking rejects a second booking with an already stored PNR.
	ErrDuplicateBooking = errors.New("booking with this PNR already exists")
	// ErrBookingNotFound is the expected miss on a PNR + last-name lookup.
	ErrBookingNotFound = errors.New("booking not found")
)

type UseCase interface {
	Restore(ctx context.Context) error
	SetSearchParams(params domain.SearchParams)
	SelectFlight(flight domain.Flight, isReturn bool)
	SelectFare(fare domain.Fare) error
	CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	LoadBooking(ctx context.Context, pnr, lastName string) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, pnr string, mutate func(*domain.Booking)) (*domain.Booking, error)
	ClearSelection()
	Snapshot() Snapshot
}

// Snapshot is a point-in-time copy of the flow state for read-side
// consumers.
type Snapshot struct {
	SearchParams         *domain.SearchParams
	SelectedFlight       *domain.Flight
	SelectedReturnFlight *domain.Flight
	SelectedFare         *domain.Fare
	Bookings             []domain.Booking
	CurrentBooking       *domain.Booking
}

type Store struct {
	mu             sync.Mutex
	kv             kvstore.Store
	searchParams   *domain.SearchParams
	selected       *domain.Flight
	selectedReturn *domain.Flight
	selectedFare   *domain.Fare
	bookings       []domain.Booking
	current        *domain.Booking
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Restore reads the persisted booking list at startup. On failure the
// list stays empty; the current booking pointer is never restored.
// Calling it again replaces the list, it never appends.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, kvstore.KeyBookings)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("failed to load bookings: %v", err)
		}
		s.bookings = nil
		return nil
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("failed to decode booking list: %v", err)
		s.bookings = nil
		return nil
	}

	s.bookings = bookings
	return nil
}

// SetSearchParams replaces the current search and clears any flight or
// fare left over from the previous one, so a fare priced for an old route
// can never leak into a new booking.
func (s *Store) SetSearchParams(params domain.SearchParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchParams = &params
	s.selected = nil
	s.selectedReturn = nil
	s.selectedFare = nil
}

func (s *Store) SelectFlight(flight domain.Flight, isReturn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if isReturn {
		s.selectedReturn = &flight
	} else {
		s.selected = &flight
	}
}

// SelectFare requires a prior flight selection for the same flow instance.
func (s *Store) SelectFare(fare domain.Fare) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return ErrNoFlightSelected
	}
	s.selectedFare = &fare
	return nil
}

// CreateBooking appends the booking to the persisted list and makes it
// the current one. The list is written to storage before any in-memory
// change, so a failed write leaves the store as it was.
func (s *Store) CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.PNR = strings.ToUpper(booking.PNR)
	for _, b := range s.bookings {
		if b.PNR == booking.PNR {
			return nil, ErrDuplicateBooking
		}
	}

	updated := make([]domain.Booking, len(s.bookings), len(s.bookings)+1)
	copy(updated, s.bookings)
	updated = append(updated, booking)

	if err := s.persistLocked(ctx, updated); err != nil {
		return nil, err
	}

	s.bookings = updated
	s.current = &s.bookings[len(s.bookings)-1]
	out := *s.current
	return &out, nil
}

// LoadBooking matches the PNR exactly after uppercasing and the last name
// case-insensitively. A miss returns ErrBookingNotFound and leaves the
// current booking untouched.
func (s *Store) LoadBooking(ctx context.Context, pnr, lastName string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pnr = strings.ToUpper(pnr)
	for i := range s.bookings {
		b := &s.bookings[i]
		if b.PNR == pnr && strings.EqualFold(b.LastName, lastName) {
			s.current = b
			out := *b
			return &out, nil
		}
	}
	return nil, ErrBookingNotFound
}

// UpdateBooking applies mutate to the stored booking with the given PNR
// and writes the list back. Only status, check-in state and passenger
// seat assignments are expected to change after creation.
func (s *Store) UpdateBooking(ctx context.Context, pnr string, mutate func(*domain.Booking)) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pnr = strings.ToUpper(pnr)
	idx := -1
	for i := range s.bookings {
		if s.bookings[i].PNR == pnr {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrBookingNotFound
	}

	updated := make([]domain.Booking, len(s.bookings))
	copy(updated, s.bookings)

	// Clone the nested slices so a failed write cannot leak the mutation
	// into the stored list through the shared backing arrays.
	target := &updated[idx]
	target.Flights = append([]domain.Flight(nil), target.Flights...)
	target.Passengers = append([]domain.Passenger(nil), target.Passengers...)
	mutate(target)
	target.PNR = pnr

	if err := s.persistLocked(ctx, updated); err != nil {
		return nil, err
	}

	s.bookings = updated
	if s.current != nil && s.current.PNR == pnr {
		s.current = &s.bookings[idx]
	}
	out := s.bookings[idx]
	return &out, nil
}

// RefreshCheckInFlags recomputes checkInAvailable across the stored list
// and persists it when anything changed. Returns how many bookings flipped.
func (s *Store) RefreshCheckInFlags(ctx context.Context, now time.Time, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Booking, len(s.bookings))
	copy(updated, s.bookings)

	changed := 0
	for i := range updated {
		open := updated[i].CheckInOpen(now, window)
		if updated[i].CheckInAvailable != open {
			updated[i].CheckInAvailable = open
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	if err := s.persistLocked(ctx, updated); err != nil {
		return 0, err
	}
	currentPNR := ""
	if s.current != nil {
		currentPNR = s.current.PNR
	}
	s.bookings = updated
	s.current = nil
	for i := range s.bookings {
		if s.bookings[i].PNR == currentPNR {
			s.current = &s.bookings[i]
			break
		}
	}
	return changed, nil
}

// ClearSelection resets the selected flights and fare. Search params, the
// booking list and the current booking are untouched.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.selectedReturn = nil
	s.selectedFare = nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Bookings: make([]domain.Booking, len(s.bookings)),
	}
	copy(snap.Bookings, s.bookings)
	if s.searchParams != nil {
		p := *s.searchParams
		snap.SearchParams = &p
	}
	if s.selected != nil {
		f := *s.selected
		snap.SelectedFlight = &f
	}
	if s.selectedReturn != nil {
		f := *s.selectedReturn
		snap.SelectedReturnFlight = &f
	}
	if s.selectedFare != nil {
		f := *s.selectedFare
		snap.SelectedFare = &f
	}
	if s.current != nil {
		b := *s.current
		snap.CurrentBooking = &b
	}
	return snap
}

func (s *Store) persistLocked(ctx context.Context, bookings []domain.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode booking list: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeyBookings, data); err != nil {
		return fmt.Errorf("failed to persist booking list: %w", err)
	}
	return nil
}

var _ UseCase = (*Store)(nil)
