// README: Activity records and the categories/descriptions they are filed under.
package monitor

import "dispatchsim/internal/types"

type Category string

const (
	CategoryRider  Category = "rider"
	CategoryDriver Category = "driver"
)

type Description string

const (
	DescriptionRequest Description = "request"
	DescriptionCancel  Description = "cancel"
	DescriptionPickup  Description = "pickup"
	DescriptionDropoff Description = "dropoff"
)

// Activity is one thing an entity did at a point in simulated time.
type Activity struct {
	Time        int
	Description Description
	ID          string
	Location    types.Location
}

// Report summarises a run. All metrics are means; an empty population yields 0.
type Report struct {
	RiderWaitTime       float64 `json:"rider_wait_time"`
	DriverTotalDistance float64 `json:"driver_total_distance"`
	DriverRideDistance  float64 `json:"driver_ride_distance"`
}
