// README: Simulation service parses an event list, runs a fresh engine and caches the result.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dispatchsim/internal/modules/event"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("simulation run not found")
)

// RunCache keeps finished runs for later lookup.
type RunCache interface {
	Save(ctx context.Context, run *Run) error
	Get(ctx context.Context, id string) (*Run, error)
}

type Service struct {
	cache          RunCache
	logger         *log.Logger
	defaultMaxTime int
}

func NewService(cache RunCache, logger *log.Logger, defaultMaxTime int) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{cache: cache, logger: logger, defaultMaxTime: defaultMaxTime}
}

type RunCommand struct {
	Events  string
	MaxTime *int
}

func (s *Service) Run(ctx context.Context, cmd RunCommand) (*Run, error) {
	if strings.TrimSpace(cmd.Events) == "" {
		return nil, fmt.Errorf("empty event list: %w", ErrBadRequest)
	}
	events, err := event.ParseList(strings.NewReader(cmd.Events))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	maxTime := s.defaultMaxTime
	if cmd.MaxTime != nil {
		maxTime = *cmd.MaxTime
	}
	if maxTime < NoLimit {
		return nil, fmt.Errorf("max_time %d: %w", maxTime, ErrBadRequest)
	}

	id := uuid.NewString()
	engine := NewEngine(WithMaxTime(maxTime), WithLogger(s.logger.With("run_id", id)))
	report, err := engine.Run(ctx, events)
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:         id,
		Report:     report,
		Events:     len(events),
		Processed:  engine.Processed(),
		Discarded:  engine.Discarded(),
		MaxTime:    maxTime,
		FinishedAt: time.Now().UTC(),
	}
	if s.cache != nil {
		if err := s.cache.Save(ctx, run); err != nil {
			s.logger.Warn("caching run failed", "run_id", id, "err", err)
		}
	}
	return run, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("run id %q: %w", id, ErrBadRequest)
	}
	if s.cache == nil {
		return nil, ErrNotFound
	}
	return s.cache.Get(ctx, id)
}
