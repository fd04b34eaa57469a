package utils

import (
	"time"

	"dbwd/geometry"
)

// UpdateTracker keeps a moving average of the interval between updates, used
// for tick-cadence diagnostics.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   geometry.MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = time.Now()
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update(now time.Time) {
	u.LastTime = u.Time
	u.Time = now
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}
