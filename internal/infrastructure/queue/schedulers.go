package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"library-backend/internal/config"
	"library-backend/internal/shared"
	"library-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterLoanJobs() error {
	return s.registerNotifyLateLoansJob()
}

// registerNotifyLateLoansJob schedules the overdue reminder. Daily at
// midnight by default. MaxRetry is 0 on purpose: a failed dispatch is not
// retried within the tick, the next scheduled fire covers it.
func (s *Scheduler) registerNotifyLateLoansJob() error {
	payload, err := json.Marshal(shared.NotifyLateLoansPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeNotifyLateLoans, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.LateLoanCron,
		task,
		asynq.Queue(shared.QueueLoans),
		asynq.MaxRetry(0),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register NotifyLateLoans job", err)
		return err
	}

	logger.Info("Registered NotifyLateLoans", map[string]interface{}{
		"cron": s.jobConfig.LateLoanCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
