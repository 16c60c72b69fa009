// README: Rider aggregate and status definitions.
package rider

import (
	"errors"
	"fmt"

	"dispatchsim/internal/types"
)

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusCancelled Status = "cancelled"
	StatusSatisfied Status = "satisfied"
)

var (
	ErrInvalidState = errors.New("invalid rider state transition")
	ErrBadRequest   = errors.New("bad rider")
)

// AllowedTransitions represents the rider status flow as code. Terminal
// statuses have no entry.
var AllowedTransitions = map[Status][]Status{
	StatusWaiting: {StatusCancelled, StatusSatisfied},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

type Rider struct {
	ID          string
	Origin      types.Location
	Destination types.Location
	Patience    int
	status      Status
}

func New(id string, origin, destination types.Location, patience int) (*Rider, error) {
	if id == "" {
		return nil, fmt.Errorf("empty id: %w", ErrBadRequest)
	}
	if patience < 0 {
		return nil, fmt.Errorf("rider %s patience %d: %w", id, patience, ErrBadRequest)
	}
	return &Rider{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Patience:    patience,
		status:      StatusWaiting,
	}, nil
}

func (r *Rider) Status() Status {
	return r.status
}

func (r *Rider) Waiting() bool {
	return r.status == StatusWaiting
}

// Transition moves the rider to a terminal status. It fails once the rider has
// left StatusWaiting.
func (r *Rider) Transition(to Status) error {
	if !CanTransition(r.status, to) {
		return fmt.Errorf("rider %s %s -> %s: %w", r.ID, r.status, to, ErrInvalidState)
	}
	r.status = to
	return nil
}

func (r *Rider) String() string {
	return fmt.Sprintf("Rider %s -> Origin: %s, Destination: %s, Patience %d, Status: %s",
		r.ID, r.Origin, r.Destination, r.Patience, r.status)
}
