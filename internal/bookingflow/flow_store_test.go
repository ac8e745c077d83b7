package bookingflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/kvstore"
)

type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKVStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKVStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ kvstore.Store = (*MockKVStore)(nil)

func sampleFlight(id, from, to string) domain.Flight {
	return domain.Flight{
		ID:           id,
		FlightNumber: id,
		Airline:      "Ibom Air",
		From:         domain.Airport{Code: from},
		To:           domain.Airport{Code: to},
		Status:       domain.FlightStatusScheduled,
	}
}

func sampleParams(from, to string) domain.SearchParams {
	return domain.SearchParams{
		TripType:   domain.TripTypeOneWay,
		From:       from,
		To:         to,
		DepartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Passengers: domain.PassengerCounts{Adults: 1},
		CabinClass: domain.CabinClassEconomy,
		Currency:   "NGN",
	}
}

func sampleBooking(pnr, lastName string, total float64) domain.Booking {
	return domain.Booking{
		PNR:         pnr,
		LastName:    lastName,
		FirstName:   "John",
		Email:       "john@example.com",
		Flights:     []domain.Flight{sampleFlight("IB101", "UYO", "LOS")},
		Passengers:  []domain.Passenger{{ID: "p1", Type: domain.PassengerTypeAdult, FirstName: "John", LastName: lastName}},
		Status:      domain.BookingStatusConfirmed,
		TotalAmount: total,
		Currency:    "NGN",
		CreatedAt:   time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_FullPipelineScenario(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())

	store.SetSearchParams(sampleParams("UYO", "LOS"))
	store.SelectFlight(sampleFlight("IB101", "UYO", "LOS"), false)
	assert.NoError(t, store.SelectFare(domain.Fare{ID: "standard", Type: domain.FareTypeStandard, Price: 58000, Currency: "NGN"}))

	created, err := store.CreateBooking(ctx, sampleBooking("IBAB12CD", "Doe", 58000))
	assert.NoError(t, err)
	assert.Equal(t, "IBAB12CD", created.PNR)

	snap := store.Snapshot()
	assert.NotNil(t, snap.CurrentBooking)
	assert.Equal(t, "IBAB12CD", snap.CurrentBooking.PNR)
	assert.Len(t, snap.Bookings, 1)
	assert.Equal(t, float64(58000), snap.Bookings[0].TotalAmount)
}

func TestStore_SelectFare_RequiresFlight(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	store.SetSearchParams(sampleParams("UYO", "LOS"))

	err := store.SelectFare(domain.Fare{ID: "basic", Price: 45000})
	assert.ErrorIs(t, err, ErrNoFlightSelected)
	assert.Nil(t, store.Snapshot().SelectedFare)
}

func TestStore_SetSearchParams_ClearsStaleSelection(t *testing.T) {
	store := NewStore(kvstore.NewMemory())

	store.SetSearchParams(sampleParams("UYO", "LOS"))
	store.SelectFlight(sampleFlight("IB101", "UYO", "LOS"), false)
	assert.NoError(t, store.SelectFare(domain.Fare{ID: "flex", Price: 75000}))

	store.SetSearchParams(sampleParams("UYO", "ABV"))

	snap := store.Snapshot()
	assert.Nil(t, snap.SelectedFlight)
	assert.Nil(t, snap.SelectedReturnFlight)
	assert.Nil(t, snap.SelectedFare)
	assert.Equal(t, "ABV", snap.SearchParams.To)
}

func TestStore_ClearSelection_KeepsSearchParamsAndBookings(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())

	store.SetSearchParams(sampleParams("UYO", "LOS"))
	store.SelectFlight(sampleFlight("IB101", "UYO", "LOS"), false)
	store.SelectFlight(sampleFlight("IB102", "LOS", "UYO"), true)
	assert.NoError(t, store.SelectFare(domain.Fare{ID: "standard", Price: 58000}))
	_, err := store.CreateBooking(ctx, sampleBooking("IBAA11BB", "Doe", 58000))
	assert.NoError(t, err)

	store.ClearSelection()

	snap := store.Snapshot()
	assert.Nil(t, snap.SelectedFlight)
	assert.Nil(t, snap.SelectedReturnFlight)
	assert.Nil(t, snap.SelectedFare)
	assert.NotNil(t, snap.SearchParams)
	assert.Len(t, snap.Bookings, 1)
	assert.NotNil(t, snap.CurrentBooking)
}

func TestStore_CreateBooking_SequentialOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())

	_, err := store.CreateBooking(ctx, sampleBooking("IBAA11BB", "Doe", 45000))
	assert.NoError(t, err)
	_, err = store.CreateBooking(ctx, sampleBooking("IBCC22DD", "Doe", 58000))
	assert.NoError(t, err)

	snap := store.Snapshot()
	assert.Len(t, snap.Bookings, 2)
	assert.Equal(t, "IBAA11BB", snap.Bookings[0].PNR)
	assert.Equal(t, "IBCC22DD", snap.Bookings[1].PNR)
	assert.Equal(t, "IBCC22DD", snap.CurrentBooking.PNR)
}

func TestStore_CreateBooking_RejectsDuplicatePNR(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())

	_, err := store.CreateBooking(ctx, sampleBooking("IBAA11BB", "Doe", 45000))
	assert.NoError(t, err)

	_, err = store.CreateBooking(ctx, sampleBooking("IBAA11BB", "Smith", 58000))
	assert.ErrorIs(t, err, ErrDuplicateBooking)
	assert.Len(t, store.Snapshot().Bookings, 1)
}

func TestStore_CreateBooking_WriteFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	mockKV := &MockKVStore{}
	mockKV.On("Set", ctx, kvstore.KeyBookings, mock.Anything).Return(errors.New("disk full")).Once()

	store := NewStore(mockKV)
	_, err := store.CreateBooking(ctx, sampleBooking("IBAA11BB", "Doe", 45000))

	assert.Error(t, err)
	snap := store.Snapshot()
	assert.Empty(t, snap.Bookings)
	assert.Nil(t, snap.CurrentBooking)
	mockKV.AssertExpectations(t)
}

func TestStore_LoadBooking_MatchesCaseInsensitiveLastName(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())

	_, err := store.CreateBooking(ctx, sampleBooking("IBXYZ12A", "Doe", 45000))
	assert.NoError(t, err)

	for _, lastName := range []string{"Doe", "DOE", "doe", "dOe"} {
		booking, err := store.LoadBooking(ctx, "IBXYZ12A", lastName)
		assert.NoError(t, err, "last name %q", lastName)
		assert.Equal(t, "IBXYZ12A", booking.PNR)
	}

	// Lowercase PNR is uppercased before matching.
	booking, err := store.LoadBooking(ctx, "ibxyz12a", "Doe")
	assert.NoError(t, err)
	assert.Equal(t, "IBXYZ12A", booking.PNR)
}

func TestStore_LoadBooking_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())

	_, err := store.CreateBooking(ctx, sampleBooking("IBXYZ12A", "Doe", 45000))
	assert.NoError(t, err)

	_, err = store.LoadBooking(ctx, "IBXYZ12A", "Smith")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = store.LoadBooking(ctx, "IBZZZ99Z", "Doe")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// A miss never moves the current pointer.
	loaded, err := store.LoadBooking(ctx, "IBXYZ12A", "Doe")
	assert.NoError(t, err)
	_, missErr := store.LoadBooking(ctx, "IBZZZ99Z", "Doe")
	assert.Error(t, missErr)
	assert.Equal(t, loaded.PNR, store.Snapshot().CurrentBooking.PNR)
}

func TestStore_Restore_RoundTripAndIdempotence(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	store := NewStore(kv)
	_, err := store.CreateBooking(ctx, sampleBooking("IBAA11BB", "Doe", 45000))
	assert.NoError(t, err)
	_, err = store.CreateBooking(ctx, sampleBooking("IBCC22DD", "Doe", 58000))
	assert.NoError(t, err)

	restarted := NewStore(kv)
	assert.NoError(t, restarted.Restore(ctx))
	assert.NoError(t, restarted.Restore(ctx))

	snap := restarted.Snapshot()
	assert.Len(t, snap.Bookings, 2)
	assert.Nil(t, snap.CurrentBooking)

	loaded, err := restarted.LoadBooking(ctx, "IBAA11BB", "doe")
	assert.NoError(t, err)
	assert.Equal(t, float64(45000), loaded.TotalAmount)
}

func TestStore_Restore_ReadFailureLeavesListEmpty(t *testing.T) {
	ctx := context.Background()
	mockKV := &MockKVStore{}
	mockKV.On("Get", ctx, kvstore.KeyBookings).Return(nil, errors.New("io error")).Once()

	store := NewStore(mockKV)
	assert.NoError(t, store.Restore(ctx))
	assert.Empty(t, store.Snapshot().Bookings)
	mockKV.AssertExpectations(t)
}

func TestStore_UpdateBooking_PersistsMutation(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	store := NewStore(kv)

	_, err := store.CreateBooking(ctx, sampleBooking("IBAA11BB", "Doe", 45000))
	assert.NoError(t, err)

	updated, err := store.UpdateBooking(ctx, "ibaa11bb", func(b *domain.Booking) {
		b.CheckInAvailable = true
		b.Passengers[0].SeatNumber = "12A"
	})
	assert.NoError(t, err)
	assert.True(t, updated.CheckInAvailable)
	assert.Equal(t, "12A", updated.Passengers[0].SeatNumber)

	restarted := NewStore(kv)
	assert.NoError(t, restarted.Restore(ctx))
	loaded, err := restarted.LoadBooking(ctx, "IBAA11BB", "Doe")
	assert.NoError(t, err)
	assert.True(t, loaded.CheckInAvailable)
	assert.Equal(t, "12A", loaded.Passengers[0].SeatNumber)
}

func TestStore_RefreshCheckInFlags(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

	soon := sampleBooking("IBAA11BB", "Doe", 45000)
	soon.Flights[0].DepartureTime = now.Add(6 * time.Hour)
	far := sampleBooking("IBCC22DD", "Doe", 58000)
	far.Flights[0].DepartureTime = now.Add(72 * time.Hour)

	_, err := store.CreateBooking(ctx, soon)
	assert.NoError(t, err)
	_, err = store.CreateBooking(ctx, far)
	assert.NoError(t, err)

	changed, err := store.RefreshCheckInFlags(ctx, now, 24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, changed)

	snap := store.Snapshot()
	assert.True(t, snap.Bookings[0].CheckInAvailable)
	assert.False(t, snap.Bookings[1].CheckInAvailable)

	// Second sweep is a no-op.
	changed, err = store.RefreshCheckInFlags(ctx, now, 24*time.Hour)
	assert.NoError(t, err)
	assert.Zero(t, changed)
}
