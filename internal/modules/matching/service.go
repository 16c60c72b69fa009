// README: Dispatcher pairs waiting riders with requesting drivers.
package matching

import (
	"strings"

	"dispatchsim/internal/modules/driver"
	"dispatchsim/internal/modules/rider"
)

// Dispatcher owns the driver registry and the FIFO waiting list. It is
// mutated only from event handlers and is not safe for concurrent use.
type Dispatcher struct {
	registry []*driver.Driver
	waiting  []*rider.Rider
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// RequestDriver assigns the fastest idle driver to r, or queues r when no
// registered driver is idle.
func (d *Dispatcher) RequestDriver(r *rider.Rider) *driver.Driver {
	c, ok := pickFastest(d.registry, r)
	if !ok {
		d.enqueue(r)
		return nil
	}
	c.Driver.Idle = false
	return c.Driver
}

// RequestRider registers drv on first contact and hands it the oldest
// waiting rider, if any. A driver already reassigned since it asked gets
// nothing.
func (d *Dispatcher) RequestRider(drv *driver.Driver) *rider.Rider {
	if !d.registered(drv) {
		d.registry = append(d.registry, drv)
	}
	if !drv.Idle || len(d.waiting) == 0 {
		return nil
	}
	r := d.waiting[0]
	d.waiting[0] = nil
	d.waiting = d.waiting[1:]

	dest := r.Origin
	drv.Destination = &dest
	drv.Idle = false
	return r
}

// CancelRide drops r from the waiting list; unknown riders are ignored.
func (d *Dispatcher) CancelRide(r *rider.Rider) {
	for i, w := range d.waiting {
		if w == r {
			d.waiting = append(d.waiting[:i], d.waiting[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Drivers() []*driver.Driver {
	out := make([]*driver.Driver, len(d.registry))
	copy(out, d.registry)
	return out
}

func (d *Dispatcher) Waiting() []*rider.Rider {
	out := make([]*rider.Rider, len(d.waiting))
	copy(out, d.waiting)
	return out
}

func (d *Dispatcher) String() string {
	var b strings.Builder
	b.WriteString("Rider Waiting list: ")
	for _, r := range d.waiting {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	b.WriteString("\nDriver Waiting List: ")
	for _, drv := range d.registry {
		b.WriteString(drv.String())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

func (d *Dispatcher) enqueue(r *rider.Rider) {
	for _, w := range d.waiting {
		if w == r {
			return
		}
	}
	d.waiting = append(d.waiting, r)
}

func (d *Dispatcher) registered(drv *driver.Driver) bool {
	for _, x := range d.registry {
		if x == drv {
			return true
		}
	}
	return false
}
