// README: Driver lifecycle tests (travel time rounding, drive/ride invariants).
package driver

import (
	"errors"
	"testing"

	"dispatchsim/internal/modules/rider"
	"dispatchsim/internal/types"
)

func TestNew_Validation(t *testing.T) {
	loc := types.Location{Row: 2, Column: 2}
	if _, err := New("", loc, 1); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("empty id: expected ErrBadRequest, got %v", err)
	}
	if _, err := New("Abel", loc, 0); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("zero speed: expected ErrBadRequest, got %v", err)
	}
	d, err := New("Abel", loc, 3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !d.Idle || d.Destination != nil {
		t.Fatalf("new driver must be idle without destination: %+v", d)
	}
}

func TestTravelTime_RoundsHalfToEven(t *testing.T) {
	cases := []struct {
		name     string
		from, to types.Location
		speed    int
		want     int
	}{
		{"18/5 rounds up", types.Location{Row: 3, Column: 2}, types.Location{Row: 10, Column: 13}, 5, 4},
		{"20/5 exact", types.Location{Row: 10, Column: 13}, types.Location{Row: 1, Column: 2}, 5, 4},
		{"6/3 exact", types.Location{Row: 2, Column: 4}, types.Location{Row: 5, Column: 7}, 3, 2},
		{"5/2 half to even down", types.Location{}, types.Location{Row: 5}, 2, 2},
		{"15/2 half to even up", types.Location{}, types.Location{Row: 15}, 2, 8},
		{"1/2 half to zero", types.Location{}, types.Location{Column: 1}, 2, 0},
		{"same place", types.Location{Row: 1, Column: 1}, types.Location{Row: 1, Column: 1}, 9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TravelTime(tc.from, tc.to, tc.speed); got != tc.want {
				t.Errorf("TravelTime = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDriveAndRide(t *testing.T) {
	d, _ := New("Abel", types.Location{Row: 2, Column: 4}, 3)
	r, _ := rider.New("Eve", types.Location{Row: 2, Column: 4}, types.Location{Row: 5, Column: 7}, 100)

	if got := d.StartDrive(r.Origin); got != 0 {
		t.Fatalf("drive to own location: expected 0, got %d", got)
	}
	if d.Idle || d.Destination == nil {
		t.Fatalf("driving driver must be busy with a destination")
	}
	d.EndDrive()
	if !d.Idle || d.Destination != nil || d.Location != r.Origin {
		t.Fatalf("unexpected state after drive: %+v", d)
	}

	if got := d.StartRide(r); got != 2 {
		t.Fatalf("ride time: expected 2, got %d", got)
	}
	if d.Rider != r || *d.Destination != r.Destination {
		t.Fatalf("ride must carry the rider to their destination")
	}
	d.EndRide()
	if !d.Idle || d.Destination != nil || d.Rider != nil || d.Location != r.Destination {
		t.Fatalf("unexpected state after ride: %+v", d)
	}
}

func TestEndWithoutDestinationPanics(t *testing.T) {
	d, _ := New("Abel", types.Location{}, 1)
	assertPanics(t, "end drive", d.EndDrive)

	r, _ := rider.New("Eve", types.Location{}, types.Location{Row: 1}, 1)
	d.Rider = r
	assertPanics(t, "end ride", d.EndRide)
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
