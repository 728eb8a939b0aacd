package main

import (
	"log"

	"library-backend/internal/infrastructure/queue"
	"library-backend/pkg/container"
)

// asynqScheduler wraps queue.Scheduler with lifecycle helpers
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler creates the scheduler and registers the cron jobs
func setupScheduler(c *container.Container, cfg *Config) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.RedisAddr, c.Config.Jobs)

	if err := scheduler.RegisterLoanJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown gracefully shuts down the scheduler
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] Stopped")
}
