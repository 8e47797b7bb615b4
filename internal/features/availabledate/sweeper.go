package availabledate

import (
	"context"
	"fmt"
	"time"

	"go-clinic/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper runs the daily date sweep on a cron schedule.
type Sweeper struct {
	service   DateService
	schedule  string
	logger    *zap.Logger
	scheduler *cron.Cron
}

func NewSweeper(service DateService, cfg *config.Config, logger *zap.Logger) (*Sweeper, error) {
	if _, err := cron.ParseStandard(cfg.SweepSchedule); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", cfg.SweepSchedule, err)
	}
	return &Sweeper{
		service:  service,
		schedule: cfg.SweepSchedule,
		logger:   logger,
	}, nil
}

// Start registers the sweep job and launches the scheduler.
func (s *Sweeper) Start(ctx context.Context) error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if _, err := s.service.Sweep(ctx, time.Now()); err != nil {
			s.logger.Error("date sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.Start()
	s.logger.Info("date sweeper started", zap.String("schedule", s.schedule))
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (s *Sweeper) Stop() error {
	if s.scheduler != nil {
		<-s.scheduler.Stop().Done()
	}
	return nil
}
