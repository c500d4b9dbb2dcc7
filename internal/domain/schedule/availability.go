package schedule

import "time"

type AvailabilityInput struct {
	BarberID  string
	ServiceID string
	Date      time.Time
	Now       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusinessHours bounds the bookable day, in minutes of day.
type BusinessHours struct {
	OpenMinutes  int
	CloseMinutes int
}
