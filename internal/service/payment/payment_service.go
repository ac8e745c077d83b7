package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/clock"
	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/kafka"
)

var (
	ErrNoFlightSelected = errors.New("no flight selected")
	ErrNoFareSelected   = errors.New("no fare selected")
)

type PaymentUseCase interface {
	Pay(ctx context.Context, input PaymentInput) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// PaymentInput carries the contact, passenger and card details collected
// by the passenger and payment screens. Card data is never stored; it is
// only checked for presence since no processor exists.
type PaymentInput struct {
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Passengers []domain.Passenger `json:"passengers"`
	CardNumber string             `json:"card_number"`
	CardHolder string             `json:"card_holder"`
	CardExpiry string             `json:"card_expiry"`
	CardCVV    string             `json:"card_cvv"`
}

type PaymentService struct {
	flow               bookingflow.UseCase
	producer           Producer
	clk                clock.Clock
	delay              time.Duration
	checkinWindow      time.Duration
	bookingTopic       string
	notificationsTopic string
}

type PaymentServiceOption func(*PaymentService)

func WithNotificationsTopic(topic string) PaymentServiceOption {
	return func(s *PaymentService) {
		s.notificationsTopic = topic
	}
}

func NewPaymentService(
	flow bookingflow.UseCase,
	producer Producer,
	clk clock.Clock,
	delay, checkinWindow time.Duration,
	bookingTopic string,
	opts ...PaymentServiceOption,
) *PaymentService {
	service := &PaymentService{
		flow:          flow,
		producer:      producer,
		clk:           clk,
		delay:         delay,
		checkinWindow: checkinWindow,
		bookingTopic:  bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Pay finalizes the current flow into a Booking: it validates the input,
// runs the simulated processing delay, assembles the booking from the
// selected flights and fare and appends it through the flow store. The
// total amount is a snapshot of the fare price at this moment.
func (s *PaymentService) Pay(ctx context.Context, input PaymentInput) (*domain.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	snap := s.flow.Snapshot()
	if snap.SelectedFlight == nil {
		return nil, ErrNoFlightSelected
	}
	if snap.SelectedFare == nil {
		return nil, ErrNoFareSelected
	}

	if err := s.clk.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	now := s.clk.Now()
	booking := domain.Booking{
		PNR:         domain.GeneratePNR(),
		LastName:    input.Passengers[0].LastName,
		FirstName:   input.Passengers[0].FirstName,
		Email:       input.Email,
		Phone:       input.Phone,
		Flights:     []domain.Flight{*snap.SelectedFlight},
		Passengers:  withIDs(input.Passengers),
		Status:      domain.BookingStatusConfirmed,
		TotalAmount: snap.SelectedFare.Price,
		Currency:    snap.SelectedFare.Currency,
		CreatedAt:   now,
	}
	if snap.SelectedReturnFlight != nil {
		booking.Flights = append(booking.Flights, *snap.SelectedReturnFlight)
	}
	booking.CheckInAvailable = booking.CheckInOpen(now, s.checkinWindow)

	created, err := s.createWithFreshPNR(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", created); err != nil {
		fmt.Printf("WARNING: failed to publish booking_created event for booking %s: %v\n", created.PNR, err)
	}
	return created, nil
}

// createWithFreshPNR retries with a new locator on the unlikely duplicate
// collision; any other failure propagates unchanged.
func (s *PaymentService) createWithFreshPNR(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	for attempt := 0; ; attempt++ {
		created, err := s.flow.CreateBooking(ctx, booking)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, bookingflow.ErrDuplicateBooking) || attempt >= 2 {
			return nil, err
		}
		booking.PNR = domain.GeneratePNR()
	}
}

func (s *PaymentService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		PNR:         booking.PNR,
		LastName:    booking.LastName,
		Email:       booking.Email,
		TotalAmount: booking.TotalAmount,
		Currency:    booking.Currency,
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.PNR, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.PNR, event)
	}
	return nil
}

func validateInput(input PaymentInput) error {
	if input.Email == "" {
		return errors.New("email is required")
	}
	if len(input.Passengers) == 0 {
		return errors.New("at least one passenger is required")
	}
	for _, p := range input.Passengers {
		if p.FirstName == "" || p.LastName == "" {
			return errors.New("passenger name is required")
		}
	}
	if input.CardNumber == "" || input.CardHolder == "" || input.CardExpiry == "" || input.CardCVV == "" {
		return errors.New("card details are required")
	}
	return nil
}

func withIDs(passengers []domain.Passenger) []domain.Passenger {
	out := make([]domain.Passenger, len(passengers))
	copy(out, passengers)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
		if out[i].Type == "" {
			out[i].Type = domain.PassengerTypeAdult
		}
	}
	return out
}

var _ PaymentUseCase = (*PaymentService)(nil)
