package email

import (
	"context"
	"fmt"

	"github.com/ibomair/appcore/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "checkin_completed":
		fmt.Printf("send boarding pass to %s for booking %s\n", event.Email, event.PNR)
	default:
		fmt.Printf("send %s notice to %s for booking %s (%s %.2f)\n", event.Type, event.Email, event.PNR, event.Currency, event.TotalAmount)
	}
	return nil
}
