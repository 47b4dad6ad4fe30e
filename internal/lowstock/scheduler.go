package lowstock

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Scheduler struct {
	monitor  *Monitor
	interval time.Duration
	log      *zap.Logger
	stopCh   chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func NewScheduler(monitor *Monitor, interval time.Duration, log *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		monitor:  monitor,
		interval: interval,
		log:      log,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("starting low stock scheduler", zap.Duration("interval", s.interval))
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop is safe to call more than once and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		s.log.Info("stopping low stock scheduler")
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if _, err := s.monitor.Scan(ctx); err != nil {
		s.log.Error("initial low stock scan failed", zap.Error(err))
	}

	for {
		select {
		case <-ticker.C:
			if _, err := s.monitor.Scan(ctx); err != nil {
				s.log.Error("low stock scan failed", zap.Error(err))
			}
		case <-s.stopCh:
			s.log.Info("low stock scheduler stopped")
			return
		case <-ctx.Done():
			s.log.Info("low stock scheduler cancelled")
			return
		}
	}
}

func (s *Scheduler) RunOnceNow(ctx context.Context) (int, error) {
	return s.monitor.Scan(ctx)
}
