// Package main is the entry point for the neatface watch face simulator.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwulff/neatface-go/internal/config"
	"github.com/jwulff/neatface-go/internal/domain"
	"github.com/jwulff/neatface-go/internal/settings"
	"github.com/jwulff/neatface-go/internal/storage/sqlite"
)

func main() {
	if len(os.Args) < 2 {
		showUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	switch os.Args[1] {
	case "preview":
		run(previewFrame(cfg, logger))
	case "watch":
		run(watchMode(cfg, logger))
	case "set":
		if len(os.Args) < 4 {
			fmt.Println("Error: key and value required")
			fmt.Println("Usage: neatface set <key> <value>")
			os.Exit(1)
		}
		run(setSetting(cfg, os.Args[2], os.Args[3]))
	case "unset":
		if len(os.Args) < 3 {
			fmt.Println("Error: key required")
			fmt.Println("Usage: neatface unset <key>")
			os.Exit(1)
		}
		run(unsetSetting(cfg, os.Args[2]))
	case "settings":
		run(listSettings(cfg))
	case "reset":
		run(resetSettings(cfg))
	default:
		showUsage()
	}
}

func run(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println("Neatface - watch face simulator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  neatface preview             - Render one frame for the current time")
	fmt.Println("  neatface watch               - Run the simulated watch")
	fmt.Println("  neatface set <key> <value>   - Change a face setting")
	fmt.Println("  neatface unset <key>         - Restore one setting to its default")
	fmt.Println("  neatface settings            - Show the current settings")
	fmt.Println("  neatface reset               - Restore default settings")
	fmt.Println()
	fmt.Println("Setting keys:")
	for _, key := range domain.Keys() {
		fmt.Printf("  %s\n", key)
	}
	fmt.Println()
	fmt.Println("Watch commands: tap, display, presence, set <key> <value>, unset <key>, quit")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  NEATFACE_CONFIG     - Config file path")
	fmt.Println("  NEATFACE_LOCALE     - Override the watch locale")
	fmt.Println("  NEATFACE_DB         - Override the settings database path")
	fmt.Println("  NEATFACE_DEBUG      - Set to 1 for debug logging")
}

func openSettings(ctx context.Context, cfg *config.Config) (*sqlite.Store, *settings.Manager, error) {
	store, err := sqlite.NewFileStore(cfg.StoragePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	mgr, err := settings.Open(ctx, store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, mgr, nil
}

func previewFrame(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()
	store, err := sqlite.NewFileStore(cfg.StoragePath())
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	defer store.Close()

	a, err := newApp(ctx, cfg, logger, store)
	if err != nil {
		return err
	}
	a.device.Clock.Tick(time.Now())

	fmt.Println(a.frame())
	fmt.Println(a.status())
	return nil
}

func watchMode(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.NewFileStore(cfg.StoragePath())
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	defer store.Close()

	a, err := newApp(ctx, cfg, logger, store)
	if err != nil {
		return err
	}

	var lastErr error
	a.device.AfterEvent(func() {
		fmt.Print("\033[H\033[2J")
		fmt.Println(a.frame())
		fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), a.status())
		if lastErr != nil {
			fmt.Printf("  Error: %v\n", lastErr)
			lastErr = nil
		}
		fmt.Print("> ")
	})

	go readCommands(ctx, os.Stdin, a, stop, func(err error) { lastErr = err })

	if err := a.device.Run(ctx); err != nil {
		return err
	}
	fmt.Println("\nStopping...")
	return nil
}

// readCommands feeds input lines to the run loop until quit. End of input
// leaves the device running. report is only called on the loop.
func readCommands(ctx context.Context, in io.Reader, a *app, stop context.CancelFunc, report func(error)) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, err := parseCommand(scanner.Text())
		if err == nil && cmd.name == "quit" {
			stop()
			return
		}
		ok := a.device.Post(ctx, func() {
			if err != nil {
				report(err)
				return
			}
			report(a.apply(ctx, cmd))
		})
		if !ok {
			return
		}
	}
}

func setSetting(cfg *config.Config, key, value string) error {
	ctx := context.Background()
	store, mgr, err := openSettings(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := mgr.Set(ctx, key, value); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, mgr.Current().Values()[key])
	return nil
}

func unsetSetting(cfg *config.Config, key string) error {
	ctx := context.Background()
	store, mgr, err := openSettings(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := mgr.Unset(ctx, key); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, mgr.Current().Values()[key])
	return nil
}

func listSettings(cfg *config.Config) error {
	ctx := context.Background()
	store, mgr, err := openSettings(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	values := mgr.Current().Values()
	for _, k := range domain.Keys() {
		fmt.Printf("%-16s %s\n", k, values[k])
	}
	return nil
}

func resetSettings(cfg *config.Config) error {
	ctx := context.Background()
	store, mgr, err := openSettings(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := mgr.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("Settings restored to defaults.")
	return nil
}
