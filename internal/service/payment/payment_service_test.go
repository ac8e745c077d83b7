package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/kafka"
	"github.com/ibomair/appcore/internal/kvstore"
)

type fakeClock struct {
	now    time.Time
	slept  time.Duration
	sleeps int
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.slept += d
	c.sleeps++
	return nil
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() PaymentInput {
	return PaymentInput{
		Email: "john@example.com",
		Phone: "+2348000000000",
		Passengers: []domain.Passenger{
			{Type: domain.PassengerTypeAdult, Title: "Mr", FirstName: "John", LastName: "Doe", DateOfBirth: "1990-04-02", Nationality: "NG"},
		},
		CardNumber: "4111111111111111",
		CardHolder: "JOHN DOE",
		CardExpiry: "12/27",
		CardCVV:    "123",
	}
}

func preparedFlow(t *testing.T, now time.Time) *bookingflow.Store {
	t.Helper()
	flow := bookingflow.NewStore(kvstore.NewMemory())
	flow.SetSearchParams(domain.SearchParams{
		TripType:   domain.TripTypeOneWay,
		From:       "UYO",
		To:         "LOS",
		DepartDate: now,
		Passengers: domain.PassengerCounts{Adults: 1},
		CabinClass: domain.CabinClassEconomy,
		Currency:   "NGN",
	})
	flow.SelectFlight(domain.Flight{
		ID:            "IB101",
		FlightNumber:  "IB101",
		Airline:       "Ibom Air",
		From:          domain.Airport{Code: "UYO"},
		To:            domain.Airport{Code: "LOS"},
		DepartureTime: now.Add(6 * time.Hour),
		ArrivalTime:   now.Add(7 * time.Hour),
		Status:        domain.FlightStatusScheduled,
	}, false)
	assert.NoError(t, flow.SelectFare(domain.Fare{ID: "standard", Type: domain.FareTypeStandard, Price: 58000, Currency: "NGN"}))
	return flow
}

func TestPaymentService_Pay_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	clk := &fakeClock{now: now}
	flow := preparedFlow(t, now)
	mockProducer := &MockProducer{}
	mockProducer.On("Publish", ctx, "booking-events", mock.Anything, mock.Anything).Return(nil).Once()

	service := NewPaymentService(flow, mockProducer, clk, 1500*time.Millisecond, 24*time.Hour, "booking-events")

	booking, err := service.Pay(ctx, validInput())
	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.True(t, domain.ValidPNR(booking.PNR))
	assert.Equal(t, "Doe", booking.LastName)
	assert.Equal(t, "John", booking.FirstName)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, float64(58000), booking.TotalAmount)
	assert.Equal(t, "NGN", booking.Currency)
	assert.Len(t, booking.Flights, 1)
	assert.True(t, booking.CheckInAvailable, "departure within window opens check-in")
	assert.NotEmpty(t, booking.Passengers[0].ID)
	assert.Equal(t, 1500*time.Millisecond, clk.slept)

	snap := flow.Snapshot()
	assert.Len(t, snap.Bookings, 1)
	assert.Equal(t, booking.PNR, snap.CurrentBooking.PNR)

	mockProducer.AssertExpectations(t)
}

func TestPaymentService_Pay_RoundTripAddsReturnLeg(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	flow := preparedFlow(t, now)
	flow.SelectFlight(domain.Flight{
		ID:            "IB102",
		FlightNumber:  "IB102",
		From:          domain.Airport{Code: "LOS"},
		To:            domain.Airport{Code: "UYO"},
		DepartureTime: now.Add(72 * time.Hour),
	}, true)

	service := NewPaymentService(flow, nil, &fakeClock{now: now}, 0, 24*time.Hour, "")

	booking, err := service.Pay(ctx, validInput())
	assert.NoError(t, err)
	assert.Len(t, booking.Flights, 2)
	assert.Equal(t, "IB101", booking.Flights[0].ID)
	assert.Equal(t, "IB102", booking.Flights[1].ID)
}

func TestPaymentService_Pay_RequiresSelection(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

	flow := bookingflow.NewStore(kvstore.NewMemory())
	service := NewPaymentService(flow, nil, &fakeClock{now: now}, 0, 24*time.Hour, "")

	_, err := service.Pay(ctx, validInput())
	assert.ErrorIs(t, err, ErrNoFlightSelected)

	flow.SelectFlight(domain.Flight{ID: "IB101"}, false)
	_, err = service.Pay(ctx, validInput())
	assert.ErrorIs(t, err, ErrNoFareSelected)
}

func TestPaymentService_Pay_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	clk := &fakeClock{now: now}
	service := NewPaymentService(preparedFlow(t, now), nil, clk, time.Second, 24*time.Hour, "")

	testCases := []struct {
		name        string
		mutate      func(*PaymentInput)
		expectedErr string
	}{
		{"missing email", func(in *PaymentInput) { in.Email = "" }, "email is required"},
		{"no passengers", func(in *PaymentInput) { in.Passengers = nil }, "at least one passenger is required"},
		{"unnamed passenger", func(in *PaymentInput) { in.Passengers[0].LastName = "" }, "passenger name is required"},
		{"missing card number", func(in *PaymentInput) { in.CardNumber = "" }, "card details are required"},
		{"missing cvv", func(in *PaymentInput) { in.CardCVV = "" }, "card details are required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			booking, err := service.Pay(ctx, input)
			assert.Error(t, err)
			assert.Nil(t, booking)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
	assert.Zero(t, clk.sleeps, "validation failures never reach the processing delay")
}

func TestPaymentService_Pay_PublishFailureDoesNotFailBooking(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	flow := preparedFlow(t, now)
	mockProducer := &MockProducer{}
	mockProducer.On("Publish", ctx, "booking-events", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	service := NewPaymentService(flow, mockProducer, &fakeClock{now: now}, 0, 24*time.Hour, "booking-events")

	booking, err := service.Pay(ctx, validInput())
	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Len(t, flow.Snapshot().Bookings, 1)
	mockProducer.AssertExpectations(t)
}

func TestPaymentService_Pay_PublishesNotificationEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	flow := preparedFlow(t, now)
	mockProducer := &MockProducer{}

	var published kafka.BookingEvent
	mockProducer.On("Publish", ctx, "booking-events", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(3).(kafka.BookingEvent)
		}).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	service := NewPaymentService(flow, mockProducer, &fakeClock{now: now}, 0, 24*time.Hour, "booking-events",
		WithNotificationsTopic("notifications"))

	booking, err := service.Pay(ctx, validInput())
	assert.NoError(t, err)
	assert.Equal(t, "booking_created", published.Type)
	assert.Equal(t, booking.PNR, published.PNR)
	assert.Equal(t, float64(58000), published.TotalAmount)
	mockProducer.AssertExpectations(t)
}
