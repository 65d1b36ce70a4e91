package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"sohoconnect/config"
	"sohoconnect/models"
	"sohoconnect/services/notification"
	"sohoconnect/services/tasks"

	"github.com/hibiken/asynq"
)

// InitFollowUpWorker runs the async worker in background.
func InitFollowUpWorker(emailSvc notification.EmailService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCampaignQDB,
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
	mux.HandleFunc(tasks.TypeSendFollowUp, handleFollowUpTask(emailSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowUpWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowUpWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowUpWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleFollowUpTask(emailSvc notification.EmailService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.FollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowUpHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[FollowUpHandler] sending follow-up for %s to %s", p.Campaign, p.Email)

		_, err := emailSvc.SendEmail(ctx, notification.EmailMessage{
			ToEmail:  p.Email,
			ToName:   p.Name,
			Subject:  p.Subject,
			HTMLBody: p.Body,
		})
		if err != nil {
			log.Printf("[FollowUpHandler] failed to send follow-up: %v", err)
		}
		return err
	}
}
