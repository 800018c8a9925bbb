package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeyev/ledger/internal/config"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestIsLastDayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			name:     "Mid-month",
			date:     time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "Thirty-day month end",
			date:     time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "February end",
			date:     time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "Leap February 28th is not the end",
			date:     time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "Leap February 29th is",
			date:     time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "December end",
			date:     time.Date(2025, 12, 31, 6, 0, 0, 0, time.UTC),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isLastDayOfMonth(tt.date))
		})
	}
}

func TestDelayUntilMonthEnd(t *testing.T) {
	t.Run("Already on the last day", func(t *testing.T) {
		d := delayUntilMonthEnd(time.Date(2025, 4, 30, 10, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("Mid-month waits until the last day starts", func(t *testing.T) {
		d := delayUntilMonthEnd(time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 48*time.Hour, d)
	})
}

func TestRunSweepsOnMonthEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine := NewMockSavingsEngine(ctrl)

	swept := make(chan struct{}, 1)
	engine.EXPECT().MonthlySweep(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			select {
			case swept <- struct{}{}:
			default:
			}
			return nil
		}).MinTimes(1)

	cfg := &config.Config{SweepCheckInterval: 5 * time.Millisecond}
	service := New(cfg, engine)
	service.now = func() time.Time {
		return time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep did not fire on a month-end day")
	}

	cancel()
	service.Stop(time.Second)
}

func TestRunSkipsOrdinaryDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine := NewMockSavingsEngine(ctrl)
	// MonthlySweep must never fire mid-month.

	cfg := &config.Config{SweepCheckInterval: time.Hour}
	service := New(cfg, engine)
	service.now = func() time.Time {
		return time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	cancel()
	service.Stop(time.Second)
}

func TestSweepFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine := NewMockSavingsEngine(ctrl)

	swept := make(chan struct{}, 1)
	engine.EXPECT().MonthlySweep(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			select {
			case swept <- struct{}{}:
			default:
			}
			return errors.New("db error")
		}).MinTimes(1)

	cfg := &config.Config{SweepCheckInterval: 5 * time.Millisecond}
	service := New(cfg, engine)
	service.now = func() time.Time {
		return time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep did not fire")
	}

	cancel()
	service.Stop(time.Second)
}
