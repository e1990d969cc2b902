package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"parkwise/config"
	"parkwise/services/booking"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeBookingExpire is the task type for deferred booking expiry checks.
const TypeBookingExpire = "booking:expire"

type bookingExpirePayload struct {
	BookingID string `json:"booking_id"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqExpiryScheduler enqueues one expiry task per booking, processed at the
// booking's start time.
type AsynqExpiryScheduler struct {
	client *asynq.Client
}

// NewAsynqExpiryScheduler connects a scheduler to the queue Redis.
func NewAsynqExpiryScheduler() *AsynqExpiryScheduler {
	return &AsynqExpiryScheduler{client: asynq.NewClient(redisOpts())}
}

// Schedule enqueues the expiry check to run when the booking starts. The
// handler is a no-op for bookings decided in the meantime.
func (s *AsynqExpiryScheduler) Schedule(ctx context.Context, bookingID string, at time.Time) error {
	payload, err := json.Marshal(bookingExpirePayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingExpire, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue expiry task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqExpiryScheduler) Close() error {
	return s.client.Close()
}

// InitBookingExpiryWorker runs the async worker in background.
func InitBookingExpiryWorker(bookingSvc booking.BookingService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleBookingExpireTask(bookingSvc))

	go func() {
		log.Println("[ExpiryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p bookingExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			zap.L().Error("Invalid expiry payload", zap.Error(err))
			return err
		}

		if err := bookingSvc.ExpirePending(ctx, p.BookingID); err != nil {
			zap.L().Error("Booking expiry failed", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
