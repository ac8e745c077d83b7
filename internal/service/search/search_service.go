package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ibomair/appcore/internal/clock"
	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/fixture"
)

var (
	ErrUnknownAirport = errors.New("unknown airport code")
	ErrFlightNotFound = errors.New("flight not found")
	ErrUnknownFare    = errors.New("unknown fare type")
)

type SearchUseCase interface {
	Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error)
	Status(ctx context.Context, flightNumber string, day time.Time) (*domain.Flight, error)
	Fares(ctx context.Context, currency string) ([]domain.Fare, error)
	FareByID(ctx context.Context, id, currency string) (*domain.Fare, error)
}

type Cache interface {
	GetResults(ctx context.Context, key string) ([]domain.Flight, error)
	SetResults(ctx context.Context, key string, flights []domain.Flight) error
}

type SearchService struct {
	cache Cache
	clk   clock.Clock
	delay time.Duration
}

func NewSearchService(cache Cache, clk clock.Clock, delay time.Duration) *SearchService {
	return &SearchService{cache: cache, clk: clk, delay: delay}
}

// Search filters the schedule for the requested route and day. No
// inventory exists; the delay stands in for a network round trip.
func (s *SearchService) Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	if _, ok := fixture.AirportByCode(params.From); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, params.From)
	}
	if _, ok := fixture.AirportByCode(params.To); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, params.To)
	}

	key := cacheKey(params)
	if s.cache != nil {
		if cached, err := s.cache.GetResults(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	if err := s.clk.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	results := make([]domain.Flight, 0)
	for _, f := range fixture.FlightsOn(params.DepartDate) {
		if f.From.Code == params.From && f.To.Code == params.To {
			results = append(results, f)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetResults(ctx, key, results); err != nil {
			fmt.Printf("WARNING: failed to cache search results for %s: %v\n", key, err)
		}
	}
	return results, nil
}

// Status returns the flight for the given number and day, with the status
// derived from where the current time falls in its schedule.
func (s *SearchService) Status(ctx context.Context, flightNumber string, day time.Time) (*domain.Flight, error) {
	flight, ok := fixture.FlightByNumber(flightNumber, day)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightNumber)
	}

	now := s.clk.Now()
	switch {
	case now.After(flight.ArrivalTime):
		flight.Status = domain.FlightStatusLanded
	case now.After(flight.DepartureTime):
		flight.Status = domain.FlightStatusDeparted
	case flight.DepartureTime.Sub(now) <= 30*time.Minute:
		flight.Status = domain.FlightStatusBoarding
	}
	return &flight, nil
}

// Fares builds the selectable fares from the catalog in the requested
// currency.
func (s *SearchService) Fares(ctx context.Context, currency string) ([]domain.Fare, error) {
	fares := make([]domain.Fare, 0, len(fixture.FareCatalog))
	for _, entry := range fixture.FareCatalog {
		fares = append(fares, fixture.BuildFare(entry, currency))
	}
	return fares, nil
}

func (s *SearchService) FareByID(ctx context.Context, id, currency string) (*domain.Fare, error) {
	entry, ok := fixture.FareCatalogEntryByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFare, id)
	}
	fare := fixture.BuildFare(entry, currency)
	return &fare, nil
}

func cacheKey(params domain.SearchParams) string {
	return fmt.Sprintf("%s-%s:%s", params.From, params.To, params.DepartDate.Format("2006-01-02"))
}

var _ SearchUseCase = (*SearchService)(nil)
