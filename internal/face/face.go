// Package face is the presentation controller of the watch face. It listens
// to host events and writes derived values into the scene.
package face

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/jwulff/neatface-go/internal/domain"
	"github.com/jwulff/neatface-go/internal/host"
	"github.com/jwulff/neatface-go/internal/render"
	"github.com/jwulff/neatface-go/internal/scene"
	"github.com/jwulff/neatface-go/internal/timefmt"
)

// Element ids and classes the controller binds to.
const (
	IDRoot             = "root"
	IDBackground       = "background"
	IDHours            = "hours"
	IDMinutes          = "minutes"
	IDAmPm             = "ampm"
	IDDay              = "day"
	IDDate             = "date"
	IDSeparator        = "sep"
	IDBatteryIndicator = "batteryIndicator"
	IDHeartRate        = "hr"
	IDSteps            = "steps"
	IDCalories         = "cals"

	ClassBackground = "background"
	ClassColored    = "colored"
	ClassDecorative = "hide"
)

// Placeholder is shown where a reading is missing.
const Placeholder = "-"

const (
	batteryOpacity = 0.5
	// secondHandRatio is the separator half-length relative to half the root width.
	secondHandRatio = 0.9
)

// Presence is the last body-presence state reported by the sensor.
type Presence int

const (
	PresenceUnknown Presence = iota
	PresencePresent
	PresenceAbsent
)

func (p Presence) String() string {
	switch p {
	case PresencePresent:
		return "present"
	case PresenceAbsent:
		return "absent"
	}
	return "unknown"
}

// Scene looks up element handles.
type Scene interface {
	GetElementByID(id string) *scene.Element
	GetElementsByClass(class string) []*scene.Element
}

// Controller owns the presentation state. All methods must be called from
// the host's event goroutine.
type Controller struct {
	host host.Host
	log  *slog.Logger

	root, background                 *scene.Element
	hours, minutes, ampm, day, date  *scene.Element
	separator, battery               *scene.Element
	heartRate, steps, calories       *scene.Element
	backgrounds, colored, decorative []*scene.Element

	heartRateSensor host.HeartRateSensor

	lastMoment time.Time
	foreground string
	neat       bool
	presence   Presence
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the debug logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New binds a controller to the scene. Every element id the face writes to
// must exist.
func New(doc Scene, h host.Host, opts ...Option) (*Controller, error) {
	c := &Controller{
		host:       h,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		foreground: domain.DefaultForegroundColor,
		neat:       true,
	}
	for _, opt := range opts {
		opt(c)
	}

	bindings := []struct {
		id  string
		dst **scene.Element
	}{
		{IDRoot, &c.root},
		{IDBackground, &c.background},
		{IDHours, &c.hours},
		{IDMinutes, &c.minutes},
		{IDAmPm, &c.ampm},
		{IDDay, &c.day},
		{IDDate, &c.date},
		{IDSeparator, &c.separator},
		{IDBatteryIndicator, &c.battery},
		{IDHeartRate, &c.heartRate},
		{IDSteps, &c.steps},
		{IDCalories, &c.calories},
	}
	for _, b := range bindings {
		e := doc.GetElementByID(b.id)
		if e == nil {
			return nil, fmt.Errorf("missing element %q", b.id)
		}
		*b.dst = e
	}

	c.backgrounds = doc.GetElementsByClass(ClassBackground)
	c.colored = doc.GetElementsByClass(ClassColored)
	c.decorative = doc.GetElementsByClass(ClassDecorative)

	if h.Clock == nil || h.Preferences == nil || h.Settings == nil {
		return nil, fmt.Errorf("host must provide a clock, preferences and settings")
	}
	return c, nil
}

// Start registers one handler per host source, starts the sensors the app
// is permitted to use and applies the current settings.
func (c *Controller) Start() {
	h := c.host

	h.Clock.OnTick(c.OnTick)
	if h.Battery != nil {
		h.Battery.OnChange(c.OnBatteryChange)
	}
	if h.Display != nil {
		h.Display.OnChange(c.OnDisplayChange)
	}
	c.background.SetOnMouseUp(c.OnBackgroundRelease)
	h.Settings.OnChange(c.OnSettingsChange)

	c.heartRate.Text = Placeholder
	if h.HeartRate != nil && h.Permissions != nil && h.Permissions.Granted(host.PermissionHeartRate) {
		c.heartRateSensor = h.HeartRate
		h.HeartRate.OnReading(c.OnHeartRate)
	} else {
		c.log.Debug("heart rate unavailable")
	}

	if h.Body != nil && h.Permissions != nil && h.Permissions.Granted(host.PermissionActivity) {
		h.Body.OnReading(c.OnBodyPresence)
		h.Body.Start()
	} else if c.heartRateSensor != nil {
		// Without presence data, sample whenever permitted.
		c.presence = PresencePresent
		c.heartRateSensor.Start()
	}

	c.toggleDecorations(true)
	c.OnSettingsChange(h.Settings.Current())
	if h.Battery != nil {
		c.OnBatteryChange(h.Battery.ChargeLevel())
	}
}

// Presence returns the last body-presence state.
func (c *Controller) Presence() Presence {
	return c.presence
}

// LastMoment returns the moment of the most recent tick.
func (c *Controller) LastMoment() time.Time {
	return c.lastMoment
}

// OnTick refreshes the time, date and activity text.
func (c *Controller) OnTick(now time.Time) {
	prefs := c.host.Preferences
	f := timefmt.Format(now, prefs.ClockDisplay() == host.Clock12h, prefs.Language())

	c.hours.Text = f.Hours
	c.minutes.Text = f.Minutes
	c.ampm.Text = f.AmPm
	c.day.Text = f.Weekday
	c.date.Text = f.Date

	steps, calories := 0, 0
	if c.host.Activity != nil {
		steps, calories = c.host.Activity.Steps(), c.host.Activity.Calories()
	}
	c.steps.Text = countText(steps)
	c.calories.Text = countText(calories)

	c.lastMoment = now
	if c.host.Clock.Granularity() == host.GranularitySeconds {
		c.updateSecondHand(now)
	}
}

// OnBatteryChange resizes and recolors the battery indicator.
func (c *Controller) OnBatteryChange(level int) {
	charge := float64(level) / 100
	c.battery.X2 = int(float64(c.root.Width) * charge)
	c.battery.Style.Fill = render.LerpHex(render.ColorBatteryLow, render.ColorBatteryHigh, charge)
	c.battery.Style.Opacity = batteryOpacity
}

// OnBodyPresence stops heart-rate sampling while the watch is off the wrist.
func (c *Controller) OnBodyPresence(present bool) {
	if !present {
		c.presence = PresenceAbsent
		if c.heartRateSensor != nil {
			c.heartRateSensor.Stop()
		}
		c.heartRate.Text = Placeholder
		c.log.Debug("body absent, heart rate stopped")
		return
	}
	c.presence = PresencePresent
	if c.heartRateSensor != nil {
		c.heartRateSensor.Start()
		c.log.Debug("body present, heart rate started")
	}
}

// OnHeartRate shows a reading. Readings arriving while the body is absent
// are dropped.
func (c *Controller) OnHeartRate(bpm int) {
	if c.presence == PresenceAbsent {
		return
	}
	c.heartRate.Text = strconv.Itoa(bpm)
}

// OnDisplayChange dims the face when the screen turns off in neat mode.
func (c *Controller) OnDisplayChange(on bool) {
	if c.neat && !on {
		c.toggleDecorations(false)
	}
}

// OnBackgroundRelease restores decorations after a tap on the background.
func (c *Controller) OnBackgroundRelease() {
	c.toggleDecorations(true)
}

// OnSettingsChange applies a settings snapshot.
func (c *Controller) OnSettingsChange(s domain.Settings) {
	for _, e := range c.backgrounds {
		e.Style.Fill = s.BackgroundColor
	}
	c.foreground = s.ForegroundColor
	for _, e := range c.colored {
		e.Style.Fill = s.ForegroundColor
	}

	if s.DisableSeconds {
		c.host.Clock.SetGranularity(host.GranularityMinutes)
		c.updateSecondHand(c.lastMoment)
	} else {
		c.host.Clock.SetGranularity(host.GranularitySeconds)
	}

	c.ampm.Style.Opacity = 1
	if s.DisableMeridiem {
		c.ampm.Style.Opacity = 0
	}

	c.neat = !s.DisableNeat
	c.toggleDecorations(c.neat)
	c.log.Debug("settings applied", "fg", s.ForegroundColor, "bg", s.BackgroundColor,
		"seconds", !s.DisableSeconds, "neat", c.neat)
}

// updateSecondHand sizes the separator around the root center: full length
// in minutes mode, proportional to the seconds otherwise.
func (c *Controller) updateSecondHand(t time.Time) {
	middle := float64(c.root.Width) / 2
	hand := secondHandRatio * middle
	if c.host.Clock.Granularity() == host.GranularitySeconds {
		hand = math.Floor(float64(t.Second()) * hand / 60)
	}
	c.separator.X1 = int(middle - hand)
	c.separator.X2 = int(middle + hand)
}

// toggleDecorations shows or hides decorative elements and paints colored
// elements with the foreground or the neutral color.
func (c *Controller) toggleDecorations(on bool) {
	opacity, fill := 0.0, render.ColorNeutral
	if on {
		opacity, fill = 1, c.foreground
	}
	for _, e := range c.decorative {
		e.Style.Opacity = opacity
	}
	for _, e := range c.colored {
		e.Style.Fill = fill
	}
}

func countText(n int) string {
	if n <= 0 {
		return Placeholder
	}
	return strconv.Itoa(n)
}
