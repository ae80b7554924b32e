package scheduler

import (
	"context"
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type lifecycleSweeper interface {
	SweepLifecycle(ctx context.Context) (domain.LifecycleSweep, error)
}

// Scheduler drives the time-based reservation transitions: activation at
// slot start, completion at slot end, no-show cancellation. Booking itself
// stays strictly request/response; only these clock-driven moves run here.
type Scheduler struct {
	reservationService lifecycleSweeper
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService lifecycleSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("lifecycle scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("lifecycle scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sweep, err := s.reservationService.SweepLifecycle(ctx)
	if err != nil {
		s.logger.Error("lifecycle sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if sweep.Total() == 0 {
		return
	}

	for _, r := range sweep.Activated {
		s.logger.Info("reservation activated",
			logger.Int64("reservation_id", r.ID),
			logger.Int64("spot_id", r.SpotID),
		)
	}
	for _, r := range sweep.Completed {
		s.logger.Info("reservation completed",
			logger.Int64("reservation_id", r.ID),
			logger.Int64("spot_id", r.SpotID),
		)
	}
	for _, r := range sweep.NoShows {
		s.logger.Info("reservation cancelled as no-show",
			logger.Int64("reservation_id", r.ID),
			logger.Int64("spot_id", r.SpotID),
		)
	}
}
