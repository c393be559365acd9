// Package host defines the platform services the watch face consumes: the
// clock, power and display state, body sensors, activity counters,
// permissions, user preferences and the settings store.
//
// Every callback registered through these interfaces is invoked from a single
// goroutine and runs to completion before the next one starts.
package host

import (
	"time"

	"github.com/jwulff/neatface-go/internal/domain"
)

// Granularity is how often the clock ticks.
type Granularity string

const (
	GranularitySeconds Granularity = "seconds"
	GranularityMinutes Granularity = "minutes"
)

// Interval returns the tick period for the granularity.
func (g Granularity) Interval() time.Duration {
	if g == GranularityMinutes {
		return time.Minute
	}
	return time.Second
}

// ClockDisplay is the user's 12h/24h preference.
type ClockDisplay string

const (
	Clock12h ClockDisplay = "12h"
	Clock24h ClockDisplay = "24h"
)

// Permission names a runtime permission.
type Permission string

const (
	PermissionHeartRate Permission = "access_heart_rate"
	PermissionActivity  Permission = "access_activity"
)

// Clock delivers tick events at a settable granularity.
type Clock interface {
	Granularity() Granularity
	SetGranularity(g Granularity)
	OnTick(fn func(now time.Time))
}

// Battery reports the charge level, 0-100.
type Battery interface {
	ChargeLevel() int
	OnChange(fn func(level int))
}

// Display reports whether the screen is on.
type Display interface {
	On() bool
	OnChange(fn func(on bool))
}

// BodyPresenceSensor reports whether the device is being worn.
type BodyPresenceSensor interface {
	Start()
	Stop()
	OnReading(fn func(present bool))
}

// HeartRateSensor delivers beats-per-minute readings while started.
type HeartRateSensor interface {
	Start()
	Stop()
	Activated() bool
	OnReading(fn func(bpm int))
}

// Activity exposes today's counters. Zero means no data.
type Activity interface {
	Steps() int
	Calories() int
}

// Permissions answers whether the app was granted a permission.
type Permissions interface {
	Granted(p Permission) bool
}

// Preferences exposes the user's locale and time format.
type Preferences interface {
	ClockDisplay() ClockDisplay
	Language() string
}

// Settings is the settings store as seen by the face: a current snapshot and
// a notification carrying the full snapshot on every change.
type Settings interface {
	Current() domain.Settings
	OnChange(fn func(s domain.Settings))
}

// Host bundles the services of one platform. Body and HeartRate may be nil
// on hardware without the sensor.
type Host struct {
	Clock       Clock
	Battery     Battery
	Display     Display
	Body        BodyPresenceSensor
	HeartRate   HeartRateSensor
	Activity    Activity
	Permissions Permissions
	Preferences Preferences
	Settings    Settings
}
