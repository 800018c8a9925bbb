package sweeper

import (
	"context"
	"time"

	"github.com/avdeyev/ledger/internal/config"
	"go.uber.org/zap"
)

type SavingsEngine interface {
	MonthlySweep(ctx context.Context) error
}

// Service triggers the monthly savings sweep without operator action. It
// polls at day granularity: the first fire is delayed until the current
// month's last calendar day, then every tick re-checks whether "today" is
// month-end. A fire missed during downtime is not replayed.
type Service struct {
	engine        SavingsEngine
	checkInterval time.Duration
	now           func() time.Time
	done          chan struct{}
}

func New(cfg *config.Config, engine SavingsEngine) *Service {
	return &Service{
		engine:        engine,
		checkInterval: cfg.SweepCheckInterval,
		now:           time.Now,
		done:          make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("savings sweeper started",
		zap.Duration("checkInterval", s.checkInterval),
		zap.Duration("initialDelay", delayUntilMonthEnd(s.now())))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	timer := time.NewTimer(delayUntilMonthEnd(s.now()))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		zap.L().Info("context canceled, stopping sweeper")
		return
	case <-timer.C:
		s.sweep(ctx)
	}

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	if !isLastDayOfMonth(s.now()) {
		return
	}
	if err := s.engine.MonthlySweep(ctx); err != nil {
		zap.L().Error("monthly sweep failed", zap.Error(err))
	}
}

// Stop waits for the run loop, and any sweep it is in the middle of, to
// finish. The wait is bounded: the caller cancels the sweeper's context
// first, so past the timeout the sweep is considered abandoned.
func (s *Service) Stop(timeout time.Duration) {
	select {
	case <-s.done:
	case <-time.After(timeout):
		zap.L().Warn("sweeper did not stop in time", zap.Duration("timeout", timeout))
	}
}

func isLastDayOfMonth(t time.Time) bool {
	return t.Day() == lastDayOfMonth(t)
}

func lastDayOfMonth(t time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// delayUntilMonthEnd computes the delay from t until the start of the
// month's last calendar day (zero when t is already on it).
func delayUntilMonthEnd(t time.Time) time.Duration {
	lastDay := time.Date(t.Year(), t.Month(), lastDayOfMonth(t), 0, 0, 0, 0, t.Location())
	if !t.Before(lastDay) {
		return 0
	}
	return lastDay.Sub(t)
}
