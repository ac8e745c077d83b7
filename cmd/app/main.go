package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ibomair/appcore/config"
	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/bootstrap"
	"github.com/ibomair/appcore/internal/cache"
	"github.com/ibomair/appcore/internal/clock"
	"github.com/ibomair/appcore/internal/kafka"
	"github.com/ibomair/appcore/internal/kvstore"
	"github.com/ibomair/appcore/internal/service/checkin"
	"github.com/ibomair/appcore/internal/service/payment"
	"github.com/ibomair/appcore/internal/service/search"
	"github.com/ibomair/appcore/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, cleanup, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer cleanup()

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
	}

	var searchCache search.Cache
	if cfg.Redis.Addr != "" {
		searchCache = cache.NewSearchCache(cfg.Redis, time.Duration(cfg.Booking.SearchCacheTTL)*time.Second)
	}

	sessionStore := session.NewStore(kv)
	flowStore := bookingflow.NewStore(kv)
	if err := sessionStore.Restore(ctx); err != nil {
		log.Fatalf("restore session: %v", err)
	}
	if err := flowStore.Restore(ctx); err != nil {
		log.Fatalf("restore bookings: %v", err)
	}

	clk := clock.NewSystem()
	checkinWindow := time.Duration(cfg.Booking.CheckinWindowHours) * time.Hour

	searchService := search.NewSearchService(searchCache, clk, time.Duration(cfg.Booking.SearchDelayMillis)*time.Millisecond)
	paymentService := payment.NewPaymentService(
		flowStore,
		producerOrNil(producer),
		clk,
		time.Duration(cfg.Booking.PaymentDelayMillis)*time.Millisecond,
		checkinWindow,
		cfg.Kafka.BookingEventsTopic,
		payment.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	checkinService := checkin.NewCheckinService(
		flowStore,
		producerOrNil(producer),
		clk,
		time.Duration(cfg.Booking.CheckinDelayMillis)*time.Millisecond,
		checkinWindow,
		cfg.Kafka.NotificationsTopic,
	)

	deps := bootstrap.Deps{
		Session: sessionStore,
		Flow:    flowStore,
		Search:  searchService,
		Payment: paymentService,
		Checkin: checkinService,
	}

	if err := bootstrap.Run(ctx, cfg, deps); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// producerOrNil avoids handing services a non-nil interface wrapping a
// nil *kafka.Producer.
func producerOrNil(p *kafka.Producer) payment.Producer {
	if p == nil {
		return nil
	}
	return p
}
