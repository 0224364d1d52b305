package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt/scheduler")

const DefaultInterval = 60 * time.Second

// Job is one step of a tick. It returns the number of items it changed.
type Job struct {
	Name string
	Run  func(ctx context.Context, now time.Time) (int, error)
}

type Scheduler struct {
	interval time.Duration
	now      func() time.Time
	jobs     []Job

	tickMu sync.Mutex

	mu      sync.Mutex
	stop    chan struct{}
	started bool
	stopped bool
	wg      sync.WaitGroup
}

func New(interval time.Duration, clock func() time.Time, jobs ...Job) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	return &Scheduler{
		interval: interval,
		now:      clock,
		jobs:     jobs,
		stop:     make(chan struct{}),
	}
}

// Start runs a tick every interval until Stop is called or ctx is cancelled.
// Calling Start more than once, or after Stop, does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	log := logging.GetFromContext(ctx)
	log.Info().Str("interval", s.interval.String()).Msg("starting scheduler")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				select {
				case <-s.stop:
					return
				default:
				}
				s.Tick(ctx)
			case <-s.stop:
				log.Info().Msg("scheduler stopping")
				return
			case <-ctx.Done():
				log.Info().Msg("scheduler context cancelled")
				return
			}
		}
	}()
}

// Stop cancels the pending interval and waits for a running tick to finish.
// Nothing is fired once Stop has returned.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.stop)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Tick runs every job once, in order. A failing job is logged and does not
// prevent the ones after it from running.
func (s *Scheduler) Tick(ctx context.Context) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	ctx, span := tracer.Start(ctx, "scheduler-tick")
	defer span.End()

	log := logging.GetFromContext(ctx)
	now := s.now()

	for _, job := range s.jobs {
		n, err := job.Run(ctx, now)
		if err != nil {
			log.Error().Err(err).Str("job", job.Name).Msg("scheduled job failed")
			continue
		}
		if n > 0 {
			log.Info().Str("job", job.Name).Int("count", n).Msg("scheduled job changed items")
		}
	}
}
