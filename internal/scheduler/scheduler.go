package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"match-poster-bot/internal/logger"
	"match-poster-bot/internal/store"
)

// State of the supervisor loop.
type State int

const (
	// Idle means the supervisor is sleeping until the next cycle.
	Idle State = iota
	// Running means a cycle is executing.
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// CycleFunc is one pipeline invocation. A non-nil error (or a panic) counts
// as an unhandled fault and shortens the next idle to the cooldown.
type CycleFunc func(ctx context.Context) error

// Supervisor drives the pipeline: Running immediately on start, then Idle
// for the interval after each completion, or for the cooldown after an
// unhandled fault. It exits only when its context is cancelled.
type Supervisor struct {
	interval time.Duration
	cooldown time.Duration
	clock    clockwork.Clock
	cycle    CycleFunc

	mu    sync.Mutex
	state State
}

// New builds a supervisor from the schedule config.
func New(cfg store.ScheduleConfig, clock clockwork.Clock, cycle CycleFunc) *Supervisor {
	return &Supervisor{
		interval: time.Duration(cfg.IntervalSeconds) * time.Second,
		cooldown: time.Duration(cfg.CooldownSeconds) * time.Second,
		clock:    clock,
		cycle:    cycle,
	}
}

// Run blocks until ctx is cancelled. The first cycle starts immediately,
// not after the first interval.
func (s *Supervisor) Run(ctx context.Context) {
	for {
		delay := s.runCycle(ctx)
		s.setState(Idle)
		logger.Debug(ctx, "Supervisor idle", "next_run_in", delay)
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(delay):
		}
	}
}

// runCycle executes one cycle and returns the idle duration to follow it.
// Panics are recovered here so a single bad cycle never kills the process.
func (s *Supervisor) runCycle(ctx context.Context) (delay time.Duration) {
	s.setState(Running)
	delay = s.interval
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "Cycle panicked", "panic", fmt.Sprint(r))
			delay = s.cooldown
		}
	}()
	if err := s.cycle(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Cycle failed", err)
		delay = s.cooldown
	}
	return delay
}

// State reports the supervisor's current state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Supervisor) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
