package sim

import (
	"slices"
	"time"

	"github.com/jwulff/neatface-go/internal/host"
)

// Clock is a simulated clock. Tick delivers a tick to every handler.
type Clock struct {
	granularity host.Granularity
	handlers    []func(time.Time)
}

func (c *Clock) Granularity() host.Granularity { return c.granularity }

func (c *Clock) SetGranularity(g host.Granularity) { c.granularity = g }

func (c *Clock) OnTick(fn func(time.Time)) { c.handlers = append(c.handlers, fn) }

// Tick delivers now to every tick handler.
func (c *Clock) Tick(now time.Time) {
	for _, fn := range c.handlers {
		fn(now)
	}
}

// Battery is a simulated battery.
type Battery struct {
	level    int
	handlers []func(int)
}

func (b *Battery) ChargeLevel() int { return b.level }

func (b *Battery) OnChange(fn func(int)) { b.handlers = append(b.handlers, fn) }

// SetLevel clamps level to 0-100 and notifies when it changed.
func (b *Battery) SetLevel(level int) {
	level = max(0, min(100, level))
	if level == b.level {
		return
	}
	b.level = level
	for _, fn := range b.handlers {
		fn(level)
	}
}

// Display is a simulated screen.
type Display struct {
	on       bool
	handlers []func(bool)
}

func (d *Display) On() bool { return d.on }

func (d *Display) OnChange(fn func(bool)) { d.handlers = append(d.handlers, fn) }

// Set switches the screen and notifies when it changed.
func (d *Display) Set(on bool) {
	if on == d.on {
		return
	}
	d.on = on
	for _, fn := range d.handlers {
		fn(on)
	}
}

// BodySensor is a simulated body-presence sensor. Readings are only
// delivered while the sensor is started.
type BodySensor struct {
	active   bool
	present  bool
	handlers []func(bool)
}

// Start activates the sensor and reports the current state.
func (s *BodySensor) Start() {
	if s.active {
		return
	}
	s.active = true
	s.Report(s.present)
}

func (s *BodySensor) Stop() { s.active = false }

func (s *BodySensor) OnReading(fn func(bool)) { s.handlers = append(s.handlers, fn) }

// Present returns the last simulated state.
func (s *BodySensor) Present() bool { return s.present }

// Report records a presence state and delivers it if the sensor is active.
func (s *BodySensor) Report(present bool) {
	s.present = present
	if !s.active {
		return
	}
	for _, fn := range s.handlers {
		fn(present)
	}
}

// HeartRateSensor is a simulated heart-rate sensor. Readings are only
// delivered while the sensor is started.
type HeartRateSensor struct {
	active   bool
	starts   int
	stops    int
	handlers []func(int)
}

func (s *HeartRateSensor) Start() {
	s.starts++
	s.active = true
}

func (s *HeartRateSensor) Stop() {
	s.stops++
	s.active = false
}

func (s *HeartRateSensor) Activated() bool { return s.active }

func (s *HeartRateSensor) OnReading(fn func(int)) { s.handlers = append(s.handlers, fn) }

// Starts and Stops count the calls made to the sensor.
func (s *HeartRateSensor) Starts() int { return s.starts }
func (s *HeartRateSensor) Stops() int  { return s.stops }

// Push delivers a reading if the sensor is active and reports whether it did.
func (s *HeartRateSensor) Push(bpm int) bool {
	if !s.active {
		return false
	}
	for _, fn := range s.handlers {
		fn(bpm)
	}
	return true
}

// Activity holds fixed counters.
type Activity struct {
	StepCount    int
	CalorieCount int
}

func (a *Activity) Steps() int    { return a.StepCount }
func (a *Activity) Calories() int { return a.CalorieCount }

// Permissions grants a fixed set.
type Permissions struct {
	granted []host.Permission
}

// NewPermissions grants the listed permissions.
func NewPermissions(granted ...host.Permission) *Permissions {
	return &Permissions{granted: granted}
}

func (p *Permissions) Granted(perm host.Permission) bool {
	return slices.Contains(p.granted, perm)
}

// Preferences holds fixed user preferences.
type Preferences struct {
	Display host.ClockDisplay
	Locale  string
}

func (p *Preferences) ClockDisplay() host.ClockDisplay { return p.Display }
func (p *Preferences) Language() string                { return p.Locale }

var (
	_ host.Clock              = (*Clock)(nil)
	_ host.Battery            = (*Battery)(nil)
	_ host.Display            = (*Display)(nil)
	_ host.BodyPresenceSensor = (*BodySensor)(nil)
	_ host.HeartRateSensor    = (*HeartRateSensor)(nil)
	_ host.Activity           = (*Activity)(nil)
	_ host.Permissions        = (*Permissions)(nil)
	_ host.Preferences        = (*Preferences)(nil)
)
