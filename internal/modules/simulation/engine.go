// README: Simulation engine; pops the earliest event, applies it and schedules what it spawns.
package simulation

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"dispatchsim/internal/modules/event"
	"dispatchsim/internal/modules/matching"
	"dispatchsim/internal/modules/monitor"
)

// NoLimit disables the simulated-time bound.
const NoLimit = -1

type Option func(*Engine)

// WithMaxTime discards, without executing, every event scheduled after limit.
func WithMaxTime(limit int) Option {
	return func(e *Engine) { e.maxTime = limit }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithObserver is called with every executed event, in execution order.
func WithObserver(fn func(event.Event)) Option {
	return func(e *Engine) { e.observe = fn }
}

// Engine runs one simulation at a time and is not safe for concurrent use.
// Dispatcher and Monitor expose the state of the most recent run.
type Engine struct {
	dispatcher *matching.Dispatcher
	monitor    *monitor.Monitor
	maxTime    int
	logger     *log.Logger
	observe    func(event.Event)

	processed int
	discarded int
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		dispatcher: matching.NewDispatcher(),
		monitor:    monitor.New(),
		maxTime:    NoLimit,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run replays initial until the queue drains and returns the monitor's report.
// Each call starts from an empty dispatcher and monitor. A cancelled ctx stops
// the run between events.
func (e *Engine) Run(ctx context.Context, initial []event.Event) (monitor.Report, error) {
	e.dispatcher = matching.NewDispatcher()
	e.monitor = monitor.New()
	e.processed, e.discarded = 0, 0

	var q Queue
	for _, ev := range initial {
		q.Push(ev)
	}
	e.logger.Info("simulation started", "events", len(initial), "max_time", e.maxTime)

	now := 0
	for {
		if err := ctx.Err(); err != nil {
			e.logger.Warn("simulation aborted", "at", now, "processed", e.processed, "err", err)
			return monitor.Report{}, fmt.Errorf("simulation aborted at t=%d: %w", now, err)
		}
		ev, ok := q.Pop()
		if !ok {
			break
		}
		if e.maxTime != NoLimit && ev.Timestamp > e.maxTime {
			e.discarded++
			e.logger.Debug("event discarded", "event", ev, "max_time", e.maxTime)
			continue
		}
		now = ev.Timestamp
		e.logger.Debug("event", "t", ev.Timestamp, "kind", ev.Kind, "desc", ev.String())

		for _, next := range ev.Do(e.dispatcher, e.monitor) {
			if next.Timestamp < ev.Timestamp {
				panic(fmt.Sprintf("simulation: %s scheduled %s in the past", ev, next))
			}
			q.Push(next)
		}
		e.processed++
		if e.observe != nil {
			e.observe(ev)
		}
	}

	report := e.monitor.Report()
	e.logger.Info("simulation finished",
		"processed", e.processed,
		"discarded", e.discarded,
		"rider_wait_time", report.RiderWaitTime,
		"driver_total_distance", report.DriverTotalDistance,
		"driver_ride_distance", report.DriverRideDistance,
	)
	return report, nil
}

func (e *Engine) Processed() int { return e.processed }

func (e *Engine) Discarded() int { return e.discarded }

func (e *Engine) Dispatcher() *matching.Dispatcher { return e.dispatcher }

func (e *Engine) Monitor() *monitor.Monitor { return e.monitor }
