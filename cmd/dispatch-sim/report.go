package main

import (
	"encoding/json"
	"fmt"
	"io"

	"dispatchsim/internal/modules/monitor"
)

type summary struct {
	Report    monitor.Report `json:"report"`
	Events    int            `json:"events"`
	Processed int            `json:"processed"`
	Discarded int            `json:"discarded"`
}

func writeJSON(w io.Writer, s summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeText(w io.Writer, s summary) error {
	_, err := fmt.Fprintf(w,
		"=== Simulation Report ===\n"+
			"Events loaded: %d\n"+
			"Events processed: %d\n"+
			"Events discarded: %d\n"+
			"Average rider wait time: %.2f\n"+
			"Average driver total distance: %.2f\n"+
			"Average driver ride distance: %.2f\n",
		s.Events, s.Processed, s.Discarded,
		s.Report.RiderWaitTime, s.Report.DriverTotalDistance, s.Report.DriverRideDistance,
	)
	return err
}
