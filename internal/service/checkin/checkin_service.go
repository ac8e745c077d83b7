package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/clock"
	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/kafka"
)

var (
	// ErrCheckInClosed means the booking exists but its check-in window
	// has not opened or has passed.
	ErrCheckInClosed = errors.New("check-in is not open for this booking")
	// ErrAlreadyCheckedIn rejects a second check-in for the same passengers.
	ErrAlreadyCheckedIn = errors.New("all passengers already checked in")
)

type CheckinUseCase interface {
	Available(ctx context.Context, pnr, lastName string) (*domain.Booking, error)
	CheckIn(ctx context.Context, pnr, lastName string, passengerIDs []string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CheckinService struct {
	flow     bookingflow.UseCase
	producer Producer
	clk      clock.Clock
	delay    time.Duration
	window   time.Duration
	topic    string
}

func NewCheckinService(flow bookingflow.UseCase, producer Producer, clk clock.Clock, delay, window time.Duration, topic string) *CheckinService {
	return &CheckinService{
		flow:     flow,
		producer: producer,
		clk:      clk,
		delay:    delay,
		window:   window,
		topic:    topic,
	}
}

// Available looks up the booking and refreshes its checkInAvailable flag
// against the current time. The refreshed flag is persisted so the stored
// list and the derived state never disagree.
func (s *CheckinService) Available(ctx context.Context, pnr, lastName string) (*domain.Booking, error) {
	booking, err := s.flow.LoadBooking(ctx, pnr, lastName)
	if err != nil {
		return nil, err
	}

	open := booking.CheckInOpen(s.clk.Now(), s.window)
	if open == booking.CheckInAvailable {
		return booking, nil
	}
	return s.flow.UpdateBooking(ctx, booking.PNR, func(b *domain.Booking) {
		b.CheckInAvailable = open
	})
}

// CheckIn assigns seats to the named passengers (all of them when none
// are named) after the simulated processing delay.
func (s *CheckinService) CheckIn(ctx context.Context, pnr, lastName string, passengerIDs []string) (*domain.Booking, error) {
	booking, err := s.Available(ctx, pnr, lastName)
	if err != nil {
		return nil, err
	}
	if !booking.CheckInAvailable {
		return nil, ErrCheckInClosed
	}

	wanted := make(map[string]bool, len(passengerIDs))
	for _, id := range passengerIDs {
		wanted[id] = true
	}

	pending := 0
	for _, p := range booking.Passengers {
		if len(wanted) > 0 && !wanted[p.ID] {
			continue
		}
		if p.SeatNumber == "" {
			pending++
		}
	}
	if pending == 0 {
		return nil, ErrAlreadyCheckedIn
	}

	if err := s.clk.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	updated, err := s.flow.UpdateBooking(ctx, booking.PNR, func(b *domain.Booking) {
		row := 12
		for i := range b.Passengers {
			p := &b.Passengers[i]
			if len(wanted) > 0 && !wanted[p.ID] {
				continue
			}
			if p.SeatNumber == "" {
				p.SeatNumber = fmt.Sprintf("%d%c", row, 'A'+i%6)
				if i%6 == 5 {
					row++
				}
			}
		}
	})
	if err != nil {
		return nil, err
	}

	if s.producer != nil && s.topic != "" {
		event := kafka.BookingEvent{
			Type:        "checkin_completed",
			PNR:         updated.PNR,
			LastName:    updated.LastName,
			Email:       updated.Email,
			TotalAmount: updated.TotalAmount,
			Currency:    updated.Currency,
			Status:      string(updated.Status),
			CreatedAt:   updated.CreatedAt,
		}
		if err := s.producer.Publish(ctx, s.topic, updated.PNR, event); err != nil {
			fmt.Printf("WARNING: failed to publish checkin_completed event for booking %s: %v\n", updated.PNR, err)
		}
	}
	return updated, nil
}

var _ CheckinUseCase = (*CheckinService)(nil)
