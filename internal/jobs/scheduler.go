// Package jobs периодические задачи обслуживания
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = time.Minute

// OTPPurger удаляет просроченные коды
type OTPPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler планировщик задач на robfig/cron
type Scheduler struct {
	cron   *cron.Cron
	logger Logger
}

// NewScheduler создает планировщик в часовом поясе loc
func NewScheduler(loc *time.Location, logger Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		logger: logger,
	}
}

// AddOTPCleanup регистрирует очистку просроченных OTP по расписанию spec
func (s *Scheduler) AddOTPCleanup(spec string, purger OTPPurger) error {
	return s.add("otp-cleanup", spec, func(ctx context.Context) error {
		_, err := purger.PurgeExpired(ctx)
		return err
	})
}

func (s *Scheduler) add(name, spec string, job func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			s.logger.Error("Job %s failed after %s: %v", name, time.Since(start), err)
			return
		}
		s.logger.Info("Job %s finished in %s", name, time.Since(start))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s (%q): %w", name, spec, err)
	}

	s.logger.Info("Job %s scheduled: %s", name, spec)
	return nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения выполняющихся задач
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Job scheduler: stop timed out")
	}
}
