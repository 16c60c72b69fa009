// README: Monitor keeps an append-only activity log and reduces it into a Report.
package monitor

import (
	"fmt"

	"dispatchsim/internal/types"
)

type Monitor struct {
	activities map[Category]map[string][]Activity
}

func New() *Monitor {
	return &Monitor{
		activities: map[Category]map[string][]Activity{
			CategoryRider:  {},
			CategoryDriver: {},
		},
	}
}

// Notify appends an activity to the log of (category, id).
func (m *Monitor) Notify(timestamp int, category Category, description Description, id string, loc types.Location) {
	byID, ok := m.activities[category]
	if !ok {
		panic(fmt.Sprintf("monitor: unknown category %q", category))
	}
	byID[id] = append(byID[id], Activity{
		Time:        timestamp,
		Description: description,
		ID:          id,
		Location:    loc,
	})
}

// Activities returns a copy of the log for one entity.
func (m *Monitor) Activities(category Category, id string) []Activity {
	src := m.activities[category][id]
	out := make([]Activity, len(src))
	copy(out, src)
	return out
}

func (m *Monitor) Report() Report {
	return Report{
		RiderWaitTime:       m.averageWaitTime(),
		DriverTotalDistance: m.averageTotalDistance(),
		DriverRideDistance:  m.averageRideDistance(),
	}
}

func (m *Monitor) String() string {
	return fmt.Sprintf("Monitor (%d drivers, %d riders)",
		len(m.activities[CategoryDriver]), len(m.activities[CategoryRider]))
}

// averageWaitTime covers riders that were picked up or cancelled; the first
// activity is the request and the second ends the wait.
func (m *Monitor) averageWaitTime() float64 {
	total, count := 0, 0
	for _, acts := range m.activities[CategoryRider] {
		if len(acts) < 2 {
			continue
		}
		total += acts[1].Time - acts[0].Time
		count++
	}
	return mean(total, count)
}

func (m *Monitor) averageTotalDistance() float64 {
	drivers := m.activities[CategoryDriver]
	total := 0
	for _, acts := range drivers {
		for i := 1; i < len(acts); i++ {
			total += types.Manhattan(acts[i-1].Location, acts[i].Location)
		}
	}
	return mean(total, len(drivers))
}

func (m *Monitor) averageRideDistance() float64 {
	drivers := m.activities[CategoryDriver]
	total := 0
	for _, acts := range drivers {
		for i := 0; i+1 < len(acts); i++ {
			if acts[i].Description == DescriptionPickup {
				total += types.Manhattan(acts[i].Location, acts[i+1].Location)
			}
		}
	}
	return mean(total, len(drivers))
}

func mean(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
