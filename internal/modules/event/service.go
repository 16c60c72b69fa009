// README: Event transitions; each kind updates dispatcher/rider/driver state and returns follow-up events.
package event

import (
	"fmt"

	"dispatchsim/internal/modules/matching"
	"dispatchsim/internal/modules/monitor"
	"dispatchsim/internal/modules/rider"
)

// Do applies e and returns the events it spawns. Every returned event is
// scheduled no earlier than e.
func (e Event) Do(d *matching.Dispatcher, m *monitor.Monitor) []Event {
	switch e.Kind {
	case KindRiderRequest:
		return e.doRiderRequest(d, m)
	case KindDriverRequest:
		return e.doDriverRequest(d, m)
	case KindCancellation:
		return e.doCancellation(d, m)
	case KindPickup:
		return e.doPickup(m)
	case KindDropoff:
		return e.doDropoff(m)
	default:
		panic(fmt.Sprintf("event: unknown kind %s", e.Kind))
	}
}

func (e Event) doRiderRequest(d *matching.Dispatcher, m *monitor.Monitor) []Event {
	r := e.Rider
	m.Notify(e.Timestamp, monitor.CategoryRider, monitor.DescriptionRequest, r.ID, r.Origin)

	events := make([]Event, 0, 2)
	if drv := d.RequestDriver(r); drv != nil {
		travel := drv.StartDrive(r.Origin)
		events = append(events, Pickup(e.Timestamp+travel, drv, r))
	}
	return append(events, Cancellation(e.Timestamp+r.Patience, r))
}

func (e Event) doDriverRequest(d *matching.Dispatcher, m *monitor.Monitor) []Event {
	drv := e.Driver
	m.Notify(e.Timestamp, monitor.CategoryDriver, monitor.DescriptionRequest, drv.ID, drv.Location)

	r := d.RequestRider(drv)
	if r == nil {
		return nil
	}
	travel := drv.StartDrive(r.Origin)
	return []Event{Pickup(e.Timestamp+travel, drv, r)}
}

func (e Event) doCancellation(d *matching.Dispatcher, m *monitor.Monitor) []Event {
	r := e.Rider
	if !r.Waiting() {
		return nil
	}
	mustTransition(r, rider.StatusCancelled)
	d.CancelRide(r)
	m.Notify(e.Timestamp, monitor.CategoryRider, monitor.DescriptionCancel, r.ID, r.Origin)
	return nil
}

func (e Event) doPickup(m *monitor.Monitor) []Event {
	drv, r := e.Driver, e.Rider
	drv.EndDrive()

	switch r.Status() {
	case rider.StatusCancelled:
		return []Event{DriverRequest(e.Timestamp, drv)}
	case rider.StatusWaiting:
		m.Notify(e.Timestamp, monitor.CategoryRider, monitor.DescriptionPickup, r.ID, r.Origin)
		m.Notify(e.Timestamp, monitor.CategoryDriver, monitor.DescriptionPickup, drv.ID, r.Origin)
		travel := drv.StartRide(r)
		mustTransition(r, rider.StatusSatisfied)
		return []Event{Dropoff(e.Timestamp+travel, drv, r)}
	default:
		// A satisfied rider is never the target of a second pickup.
		panic(fmt.Sprintf("event: pickup of %s rider %s", r.Status(), r.ID))
	}
}

func (e Event) doDropoff(m *monitor.Monitor) []Event {
	drv, r := e.Driver, e.Rider
	drv.EndRide()
	m.Notify(e.Timestamp, monitor.CategoryRider, monitor.DescriptionDropoff, r.ID, r.Destination)
	m.Notify(e.Timestamp, monitor.CategoryDriver, monitor.DescriptionDropoff, drv.ID, drv.Location)
	return []Event{DriverRequest(e.Timestamp, drv)}
}

func mustTransition(r *rider.Rider, to rider.Status) {
	if err := r.Transition(to); err != nil {
		panic(err)
	}
}
