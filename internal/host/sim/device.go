// Package sim is a host platform simulated in-process: a run loop that owns
// every service and delivers all callbacks from one goroutine.
package sim

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jwulff/neatface-go/internal/host"
)

// Config configures a simulated device.
type Config struct {
	Locale       string
	ClockDisplay host.ClockDisplay

	BatteryLevel int
	// BatteryDrain is the time to lose one percent; zero disables draining.
	BatteryDrain time.Duration

	HeartRateInterval time.Duration
	HeartRateBase     int

	Steps    int
	Calories int

	Permissions []host.Permission
	Worn        bool

	Seed   uint64
	Now    func() time.Time
	Logger *slog.Logger
}

// heartRateSpread bounds the random walk around HeartRateBase.
const heartRateSpread = 15

// Device is a simulated watch.
type Device struct {
	Clock       *Clock
	Battery     *Battery
	Display     *Display
	Body        *BodySensor
	HeartRate   *HeartRateSensor
	Activity    *Activity
	Permissions *Permissions
	Preferences *Preferences

	cfg        Config
	log        *slog.Logger
	rng        *rand.Rand
	bpm        int
	commands   chan func()
	afterEvent []func()
}

// New creates a device with the screen on and seconds granularity.
func New(cfg Config) *Device {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.HeartRateInterval <= 0 {
		cfg.HeartRateInterval = time.Second
	}
	if cfg.ClockDisplay == "" {
		cfg.ClockDisplay = host.Clock12h
	}

	return &Device{
		Clock:       &Clock{granularity: host.GranularitySeconds},
		Battery:     &Battery{level: max(0, min(100, cfg.BatteryLevel))},
		Display:     &Display{on: true},
		Body:        &BodySensor{present: cfg.Worn},
		HeartRate:   &HeartRateSensor{},
		Activity:    &Activity{StepCount: cfg.Steps, CalorieCount: cfg.Calories},
		Permissions: NewPermissions(cfg.Permissions...),
		Preferences: &Preferences{Display: cfg.ClockDisplay, Locale: cfg.Locale},
		cfg:         cfg,
		log:         cfg.Logger,
		rng:         rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		bpm:         cfg.HeartRateBase,
		commands:    make(chan func(), 16),
	}
}

// Host returns the device services bundled with a settings source.
func (d *Device) Host(settings host.Settings) host.Host {
	return host.Host{
		Clock:       d.Clock,
		Battery:     d.Battery,
		Display:     d.Display,
		Body:        d.Body,
		HeartRate:   d.HeartRate,
		Activity:    d.Activity,
		Permissions: d.Permissions,
		Preferences: d.Preferences,
		Settings:    settings,
	}
}

// AfterEvent registers fn to run on the loop after every delivered event.
func (d *Device) AfterEvent(fn func()) {
	d.afterEvent = append(d.afterEvent, fn)
}

// Post schedules fn on the run loop. It returns false if ctx ends first.
func (d *Device) Post(ctx context.Context, fn func()) bool {
	select {
	case d.commands <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Run delivers an immediate tick, then ticks, battery drain, heart-rate
// samples and posted commands until ctx is done. Ticks after the first land on
// second or minute boundaries, following the clock granularity.
func (d *Device) Run(ctx context.Context) error {
	granularity := d.Clock.Granularity()
	now := d.cfg.Now()
	next := nextBoundary(now, granularity)
	tick := time.NewTimer(next.Sub(now))
	defer tick.Stop()

	var drainC <-chan time.Time
	if d.cfg.BatteryDrain > 0 {
		drain := time.NewTicker(d.cfg.BatteryDrain)
		defer drain.Stop()
		drainC = drain.C
	}

	heartRate := time.NewTicker(d.cfg.HeartRateInterval)
	defer heartRate.Stop()

	d.log.Debug("device running", "granularity", granularity, "battery", d.Battery.ChargeLevel())
	d.Clock.Tick(now)
	d.notifyAfterEvent()

	for {
		select {
		case <-ctx.Done():
			d.log.Debug("device stopped")
			return nil
		case <-tick.C:
			now := d.cfg.Now()
			if now.Before(next) {
				now = next
			}
			d.Clock.Tick(now)
			next = nextBoundary(now, granularity)
			tick.Reset(next.Sub(d.cfg.Now()))
		case <-drainC:
			d.Battery.SetLevel(d.Battery.ChargeLevel() - 1)
		case <-heartRate.C:
			if !d.HeartRate.Push(d.nextHeartRate()) {
				continue
			}
		case fn := <-d.commands:
			fn()
		}

		if g := d.Clock.Granularity(); g != granularity {
			d.log.Debug("granularity changed", "from", granularity, "to", g)
			granularity = g
			now := d.cfg.Now()
			next = nextBoundary(now, g)
			tick.Reset(next.Sub(now))
		}
		d.notifyAfterEvent()
	}
}

// nextBoundary returns the first whole second or minute after now.
func nextBoundary(now time.Time, g host.Granularity) time.Time {
	interval := g.Interval()
	return now.Truncate(interval).Add(interval)
}

func (d *Device) notifyAfterEvent() {
	for _, fn := range d.afterEvent {
		fn()
	}
}

// nextHeartRate advances a bounded random walk around the configured base.
// Readings never drop below 1 bpm.
func (d *Device) nextHeartRate() int {
	d.bpm += d.rng.IntN(5) - 2
	lo, hi := max(1, d.cfg.HeartRateBase-heartRateSpread), max(1, d.cfg.HeartRateBase+heartRateSpread)
	d.bpm = max(lo, min(hi, d.bpm))
	return d.bpm
}
