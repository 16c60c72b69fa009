// README: Matching candidates kept by the dispatcher.
package matching

import (
	"dispatchsim/internal/modules/driver"
	"dispatchsim/internal/modules/rider"
)

// candidate is a scored driver for one rider request.
type candidate struct {
	Driver     *driver.Driver
	TravelTime int
}

// pickFastest returns the idle driver with the smallest travel time to r's
// origin. Ties keep the earliest registered driver.
func pickFastest(registry []*driver.Driver, r *rider.Rider) (candidate, bool) {
	var best candidate
	found := false
	for _, d := range registry {
		if !d.Idle {
			continue
		}
		tt := d.TravelTime(r.Origin)
		if !found || tt < best.TravelTime {
			best = candidate{Driver: d, TravelTime: tt}
			found = true
		}
	}
	return best, found
}
