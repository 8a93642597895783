package poller

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"pepperminto/internal/shared/logger"
)

// Manager owns the gocron scheduler that drives the email ingest loop.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterIngestJob schedules the ingestor at the given interval. Singleton
// mode with reschedule ensures a slow pass is never run concurrently with the
// next one; the next tick is simply skipped.
func (m *Manager) RegisterIngestJob(ingestor *Ingestor, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			m.runIngest(ctx, ingestor)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("email", "ingest"),
		gocron.WithName("email-ingestor"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered email ingest job", "interval", interval)
	return nil
}

func (m *Manager) runIngest(ctx context.Context, ingestor *Ingestor) {
	startTime := time.Now()

	created, err := ingestor.Run(ctx)
	if err != nil {
		m.logger.Errorw("email ingest pass failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}
	if created > 0 {
		m.logger.Infow("email ingest pass completed",
			"tickets_created", created,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("email poller started")
}

// Stop gracefully stops the scheduler and waits for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false
	if err != nil {
		m.logger.Errorw("failed to stop email poller", "error", err)
		return err
	}
	m.logger.Infow("email poller stopped")
	return nil
}

// IsStarted reports whether the scheduler is running.
func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
