// README: Simulation run records returned to API callers and kept in the report cache.
package simulation

import (
	"time"

	"dispatchsim/internal/modules/monitor"
)

type Run struct {
	ID         string         `json:"run_id"`
	Report     monitor.Report `json:"report"`
	Events     int            `json:"events"`
	Processed  int            `json:"processed"`
	Discarded  int            `json:"discarded"`
	MaxTime    int            `json:"max_time"`
	FinishedAt time.Time      `json:"finished_at"`
}
