// Package poller drives the periodic job-status lookups of one upload job.
//
// A Session owns exactly one ticker goroutine. Ticks are serialized: each
// tick issues one status request and waits for it before the next tick is
// taken, so responses are applied in the order they were requested and a
// slow request merely delays the following tick. A terminal status, a call
// to Stop, or cancellation of the parent context ends the session; once
// Stop has returned no further update is delivered.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/logging"
	"github.com/google/uuid"
)

// DefaultInterval is the polling cadence used when none is configured.
const DefaultInterval = 2 * time.Second

var (
	ErrAlreadyStarted  = errors.New("polling session already started")
	ErrInvalidInterval = errors.New("polling interval must be positive")
)

// FetchFunc retrieves the current snapshot of a job.
type FetchFunc func(ctx context.Context, jobID string) (models.UploadJob, error)

// UpdateFunc receives every applied snapshot. It runs on the session
// goroutine and must not call Stop.
type UpdateFunc func(models.UploadJob)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StatePolling
)

func (s State) String() string {
	if s == StatePolling {
		return "polling"
	}
	return "idle"
}

// Session polls one job until it reaches a terminal status.
type Session struct {
	id       string
	jobID    string
	interval time.Duration
	fetch    FetchFunc
	onUpdate UpdateFunc
	log      logging.Logger

	mu      sync.Mutex
	state   State
	started bool
	cancel  context.CancelFunc
	last    models.UploadJob
	hasLast bool
	ticks   int

	done chan struct{}
}

// NewSession prepares a session for jobID. Nothing runs until Start.
func NewSession(jobID string, interval time.Duration, fetch FetchFunc, onUpdate UpdateFunc, log logging.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:       id,
		jobID:    jobID,
		interval: interval,
		fetch:    fetch,
		onUpdate: onUpdate,
		log:      log.With("job_id", jobID, "session_id", id),
		done:     make(chan struct{}),
	}
}

func (s *Session) ID() string    { return s.id }
func (s *Session) JobID() string { return s.jobID }

// Start launches the ticker goroutine. The first request is issued one
// interval after Start. A session can be started once.
func (s *Session) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	s.state = StatePolling

	ctx, s.cancel = context.WithCancel(ctx)
	go s.run(ctx)

	s.log.Debug(ctx, "polling started", "interval", s.interval)
	return nil
}

// Stop cancels the ticker and any in-flight request and waits for the
// goroutine to exit. It is idempotent and safe to call before Start.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.started {
		s.started = true
		close(s.done)
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	<-s.done
}

// Done is closed when the session has ended for any reason.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// State reports whether the session is still polling.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Last returns the most recently applied snapshot.
func (s *Session) Last() (models.UploadJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.hasLast
}

// Ticks returns the number of status requests issued so far.
func (s *Session) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

func (s *Session) run(ctx context.Context) {
	defer s.finish()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		// select picks randomly when both channels are ready.
		if ctx.Err() != nil {
			return
		}

		tick := s.countTick()
		job, err := s.fetch(ctx, s.jobID)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.log.Warn(ctx, "job status poll failed", "tick", tick, "error", err)
			continue
		}

		s.apply(job)

		if job.Status.IsTerminal() {
			s.log.Info(ctx, "job finished", "status", job.Status, "ticks", tick,
				"successful_rows", job.SuccessfulRows, "failed_rows", job.FailedRows)
			return
		}
	}
}

func (s *Session) countTick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks++
	return s.ticks
}

// apply replaces the snapshot in full and notifies the observer.
func (s *Session) apply(job models.UploadJob) {
	s.mu.Lock()
	s.last = job
	s.hasLast = true
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

func (s *Session) finish() {
	s.mu.Lock()
	s.state = StateIdle
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	close(s.done)
}
