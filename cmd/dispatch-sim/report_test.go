package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dispatchsim/internal/modules/monitor"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	s := summary{
		Report:    monitor.Report{RiderWaitTime: 4.0 / 3.0, DriverTotalDistance: 15, DriverRideDistance: 13},
		Events:    5,
		Processed: 14,
	}
	if err := writeText(&buf, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, want := range []string{
		"Events processed: 14",
		"Average rider wait time: 1.33",
		"Average driver total distance: 15.00",
		"Average driver ride distance: 13.00",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, summary{Report: monitor.Report{DriverRideDistance: 20}, Events: 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	report, ok := got["report"].(map[string]any)
	if !ok || report["driver_ride_distance"] != 20.0 {
		t.Fatalf("unexpected json: %s", buf.String())
	}
}
