package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"palmera/config"
	blockedRepo "palmera/database/repository/blocked"
	"palmera/models"
	"palmera/services/booking"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitBlockSyncWorker runs the async worker in background. It consumes
// reservation confirmations and writes the derived blocked-date ranges.
func InitBlockSyncWorker(repo blockedRepo.BlockedRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TypeBlockSync, handleBlockSyncTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[BlockSyncWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BlockSyncWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BlockSyncWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBlockSyncTask(repo blockedRepo.BlockedRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p booking.BlockSyncPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[BlockSyncHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[BlockSyncHandler] Blocking %s to %s for accommodation %s (reservation %s)",
			p.StartDate, p.EndDate, p.AccommodationID, p.ReservationID)

		block := &models.BlockedRange{
			BlockID:         uuid.New().String(),
			AccommodationID: p.AccommodationID,
			StartDate:       p.StartDate,
			EndDate:         p.EndDate,
			Reason:          "reserved by " + p.GuestName,
			FromReservation: true,
			ReservationID:   p.ReservationID,
			CreatedAt:       time.Now(),
		}
		if err := repo.Create(block); err != nil {
			log.Printf("[BlockSyncHandler] Failed to create blocked range: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[BlockSyncWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
