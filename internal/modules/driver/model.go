// README: Driver aggregate; position, speed and the drive/ride lifecycle.
package driver

import (
	"errors"
	"fmt"
	"math"

	"dispatchsim/internal/modules/rider"
	"dispatchsim/internal/types"
)

var ErrBadRequest = errors.New("bad driver")

// Driver is idle exactly when it has no destination.
type Driver struct {
	ID          string
	Location    types.Location
	Speed       int
	Idle        bool
	Destination *types.Location
	Rider       *rider.Rider
}

func New(id string, location types.Location, speed int) (*Driver, error) {
	if id == "" {
		return nil, fmt.Errorf("empty id: %w", ErrBadRequest)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("driver %s speed %d: %w", id, speed, ErrBadRequest)
	}
	return &Driver{ID: id, Location: location, Speed: speed, Idle: true}, nil
}

// TravelTime is the Manhattan distance over speed, rounded half to even.
func (d *Driver) TravelTime(to types.Location) int {
	return TravelTime(d.Location, to, d.Speed)
}

func TravelTime(from, to types.Location, speed int) int {
	return int(math.RoundToEven(float64(types.Manhattan(from, to)) / float64(speed)))
}

// StartDrive heads for a pickup and returns the time the leg takes.
func (d *Driver) StartDrive(to types.Location) int {
	d.Idle = false
	d.Destination = &to
	return d.TravelTime(to)
}

// EndDrive arrives at the current destination.
func (d *Driver) EndDrive() {
	d.arrive("drive")
	d.Rider = nil
}

// StartRide carries r to its destination and returns the time the ride takes.
func (d *Driver) StartRide(r *rider.Rider) int {
	d.Rider = r
	return d.StartDrive(r.Destination)
}

// EndRide arrives at the rider's destination.
func (d *Driver) EndRide() {
	if d.Rider == nil {
		panic(fmt.Sprintf("driver %s: end ride without a rider", d.ID))
	}
	d.arrive("ride")
	d.Rider = nil
}

func (d *Driver) arrive(leg string) {
	if d.Destination == nil {
		panic(fmt.Sprintf("driver %s: end %s without a destination", d.ID, leg))
	}
	d.Location = *d.Destination
	d.Destination = nil
	d.Idle = true
}

func (d *Driver) String() string {
	return fmt.Sprintf("Driver %s -> Location: %s, Is idle? %t, Speed: %d", d.ID, d.Location, d.Idle, d.Speed)
}
