// README: Simulation events as a closed set of kinds sharing one record type.
package event

import (
	"fmt"

	"dispatchsim/internal/modules/driver"
	"dispatchsim/internal/modules/rider"
)

type Kind int

const (
	KindRiderRequest Kind = iota + 1
	KindDriverRequest
	KindCancellation
	KindPickup
	KindDropoff
)

var kindNames = map[Kind]string{
	KindRiderRequest:  "RiderRequest",
	KindDriverRequest: "DriverRequest",
	KindCancellation:  "Cancellation",
	KindPickup:        "Pickup",
	KindDropoff:       "Dropoff",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is ordered by Timestamp for scheduling. Rider and Driver are set
// according to Kind.
type Event struct {
	Timestamp int
	Kind      Kind
	Rider     *rider.Rider
	Driver    *driver.Driver
}

func RiderRequest(t int, r *rider.Rider) Event {
	return Event{Timestamp: t, Kind: KindRiderRequest, Rider: r}
}

func DriverRequest(t int, d *driver.Driver) Event {
	return Event{Timestamp: t, Kind: KindDriverRequest, Driver: d}
}

func Cancellation(t int, r *rider.Rider) Event {
	return Event{Timestamp: t, Kind: KindCancellation, Rider: r}
}

func Pickup(t int, d *driver.Driver, r *rider.Rider) Event {
	return Event{Timestamp: t, Kind: KindPickup, Driver: d, Rider: r}
}

func Dropoff(t int, d *driver.Driver, r *rider.Rider) Event {
	return Event{Timestamp: t, Kind: KindDropoff, Driver: d, Rider: r}
}

func (e Event) String() string {
	switch e.Kind {
	case KindRiderRequest:
		return fmt.Sprintf("%d -- %s: Request a driver", e.Timestamp, e.Rider.ID)
	case KindDriverRequest:
		return fmt.Sprintf("%d -- %s: Request a rider", e.Timestamp, e.Driver.ID)
	case KindCancellation:
		return fmt.Sprintf("%d -- %s: Cancel Request", e.Timestamp, e.Rider.ID)
	case KindPickup:
		return fmt.Sprintf("%d -- %s: Pickup %s", e.Timestamp, e.Driver.ID, e.Rider.ID)
	case KindDropoff:
		return fmt.Sprintf("%d -- %s: Dropoff %s", e.Timestamp, e.Driver.ID, e.Rider.ID)
	default:
		return fmt.Sprintf("%d -- %s", e.Timestamp, e.Kind)
	}
}
