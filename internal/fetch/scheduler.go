package fetch

import (
	"context"
	"sync"
	"time"

	"squares/backend/internal/logger"
)

// Scheduler runs the poller on a fixed interval.
type Scheduler struct {
	poller     *Poller
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the sweep in flight
	mu         sync.Mutex         // protects cancelFunc
}

func NewScheduler(poller *Poller, interval time.Duration) *Scheduler {
	return &Scheduler{
		poller:   poller,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("poll scheduler started", "module", "fetch", "action", "poll", "resource", "feed", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("poll scheduler stopped", "module", "fetch", "action", "poll", "resource", "feed", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if err := s.poller.PollAll(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("poll sweep cancelled", "module", "fetch", "action", "poll", "resource", "feed", "result", "cancelled")
			return
		}
		logger.Error("poll sweep failed", "module", "fetch", "action", "poll", "resource", "feed", "result", "failed", "error", err)
	}
}
