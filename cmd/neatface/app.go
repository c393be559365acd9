package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwulff/neatface-go/internal/config"
	"github.com/jwulff/neatface-go/internal/face"
	"github.com/jwulff/neatface-go/internal/host/sim"
	"github.com/jwulff/neatface-go/internal/render"
	"github.com/jwulff/neatface-go/internal/scene"
	"github.com/jwulff/neatface-go/internal/settings"
	"github.com/jwulff/neatface-go/internal/storage"
)

// app wires the simulated watch to the face.
type app struct {
	device   *sim.Device
	settings *settings.Manager
	doc      *scene.Document
	face     *face.Controller
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger, store storage.Store) (*app, error) {
	mgr, err := settings.Open(ctx, store)
	if err != nil {
		return nil, err
	}

	doc := scene.DefaultDocument()
	if cfg.Face.Layout != "" {
		doc, err = scene.LoadLayoutFile(cfg.Face.Layout)
		if err != nil {
			return nil, err
		}
	}

	dev := sim.New(cfg.Sim(log))
	ctrl, err := face.New(doc, dev.Host(mgr), face.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to bind face: %w", err)
	}
	ctrl.Start()

	return &app{device: dev, settings: mgr, doc: doc, face: ctrl}, nil
}

// command is one line typed during watch mode.
type command struct {
	name  string
	key   string
	value string
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}
	cmd := command{name: strings.ToLower(fields[0])}
	switch cmd.name {
	case "tap", "display", "presence", "quit":
		if len(fields) != 1 {
			return command{}, fmt.Errorf("%s takes no arguments", cmd.name)
		}
	case "set":
		if len(fields) != 3 {
			return command{}, fmt.Errorf("usage: set <key> <value>")
		}
		cmd.key, cmd.value = fields[1], fields[2]
	case "unset":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: unset <key>")
		}
		cmd.key = fields[1]
	default:
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}
	return cmd, nil
}

// apply runs cmd against the device. It must be called on the run loop.
// quit is handled by the caller.
func (a *app) apply(ctx context.Context, cmd command) error {
	switch cmd.name {
	case "tap":
		a.doc.GetElementByID(face.IDBackground).MouseUp()
	case "display":
		a.device.Display.Set(!a.device.Display.On())
	case "presence":
		a.device.Body.Report(!a.device.Body.Present())
	case "set":
		return a.settings.Set(ctx, cmd.key, cmd.value)
	case "unset":
		return a.settings.Unset(ctx, cmd.key)
	}
	return nil
}

func (a *app) status() string {
	display := "on"
	if !a.device.Display.On() {
		display = "off"
	}
	return fmt.Sprintf("battery %d%% | display %s | presence %s | granularity %s",
		a.device.Battery.ChargeLevel(), display, a.face.Presence(), a.device.Clock.Granularity())
}

func (a *app) frame() string {
	return render.Render(a.doc)
}
