// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/venda-inc/venda/internal/shared/biztime"
	"github.com/venda-inc/venda/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2 in a single
// scheduler instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterSessionSweepJob registers the periodic cleanup of expired sessions.
// The sweep runs on a fixed interval and starts immediately so stale sessions
// left over from a previous process do not outlive a restart.
func (m *SchedulerManager) RegisterSessionSweepJob(sweepJob BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			m.sweepSessions(ctx, sweepJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("session", "sweep"),
		gocron.WithName("session-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered session sweep job", "interval", interval)
	return nil
}

func (m *SchedulerManager) sweepSessions(ctx context.Context, sweepJob BatchJob) {
	m.logger.Debugw("session sweep started")

	startTime := biztime.NowUTC()

	swept, err := sweepJob.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to sweep expired sessions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if swept > 0 {
		m.logger.Infow("expired sessions swept",
			"count", swept,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no expired sessions to sweep",
			"duration", time.Since(startTime),
		)
	}
}

// RegisterLowStockAlertJob registers the daily low stock check:
// runs at 07:00 business timezone, before the store opens.
func (m *SchedulerManager) RegisterLowStockAlertJob(alertJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 7 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.checkLowStock(ctx, alertJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("inventory", "low-stock"),
		gocron.WithName("low-stock-alert"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered low stock alert job", "schedule", "07:00")
	return nil
}

func (m *SchedulerManager) checkLowStock(ctx context.Context, alertJob BatchJob) {
	m.logger.Debugw("low stock check started")

	startTime := biztime.NowUTC()

	alerted, err := alertJob.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to check low stock",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if alerted > 0 {
		m.logger.Infow("low stock products alerted",
			"count", alerted,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no low stock products found",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
