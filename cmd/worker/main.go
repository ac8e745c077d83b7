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
	"github.com/ibomair/appcore/internal/email"
	"github.com/ibomair/appcore/internal/kafka"
	"github.com/ibomair/appcore/internal/kvstore"
)

// The worker sends notifications for booking events and periodically
// refreshes the derived check-in flags on the stored booking list.
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, cleanup, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer cleanup()

	flowStore := bookingflow.NewStore(kv)
	if err := flowStore.Restore(ctx); err != nil {
		log.Fatalf("restore bookings: %v", err)
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
		defer consumer.Close()

		emailSender := email.NewSender()

		go func() {
			if err := consumer.Consume(ctx, emailSender.Send); err != nil {
				log.Printf("consumer stopped: %v", err)
			}
		}()
	}

	sweepEvery := time.Duration(cfg.Worker.CheckinSweepMinutes) * time.Minute
	if sweepEvery == 0 {
		sweepEvery = 15 * time.Minute
	}
	sweepTicker := time.NewTicker(sweepEvery)
	defer sweepTicker.Stop()

	window := time.Duration(cfg.Booking.CheckinWindowHours) * time.Hour

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			if err := flowStore.Restore(ctx); err != nil {
				log.Printf("reload bookings error: %v", err)
				continue
			}
			changed, err := flowStore.RefreshCheckInFlags(ctx, time.Now(), window)
			if err != nil {
				log.Printf("refresh check-in flags error: %v", err)
				continue
			}
			if changed > 0 {
				log.Printf("updated check-in availability on %d bookings", changed)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
