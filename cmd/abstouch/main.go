package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asterpro/absTouch/internal/config"
	"github.com/asterpro/absTouch/internal/output"
	"github.com/asterpro/absTouch/internal/permissions"
	"github.com/asterpro/absTouch/internal/pointerlock"
	"github.com/asterpro/absTouch/internal/session"
	"github.com/asterpro/absTouch/internal/touch"
	"github.com/asterpro/absTouch/internal/touchpad"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abstouch",
	Short: "Stream absolute touchpad positions while the pointer is locked",
	Long: `abstouch takes over a touchpad, suspends its pointer control, and
writes normalized absolute positions to stdout, one report per finger
movement. A physical click on the touchpad ends the session.`,
	RunE:         runRoot,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(devicesCmd, statusCmd, setupCmd, recordCmd, replayCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Log.Level); err != nil {
		return err
	}

	ctx, cancel := sessionContext()
	defer cancel()

	path, err := resolveTouchpad(ctx, cfg)
	if err != nil {
		return err
	}
	if err := ensureReadable(path); err != nil {
		return err
	}

	dev, err := touchpad.OpenHardware(path)
	if err != nil {
		return err
	}
	defer dev.Close()

	locker, err := pointerlock.ForSession(cfg.Lock.Backend, dev.Name(), dev)
	if err != nil {
		return err
	}

	return runSession(ctx, dev, locker, cfg)
}

// setupLogging routes diagnostics to stderr so stdout stays a clean
// position stream.
func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// sessionContext returns a context cancelled by SIGINT or SIGTERM.
func sessionContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// resolveTouchpad picks the event node for a session: the configured
// path when set, otherwise the first discovered touchpad, optionally
// waiting for one to be plugged in.
func resolveTouchpad(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Device.Path != "" {
		return cfg.Device.Path, nil
	}

	cand, err := touchpad.First()
	if err == nil {
		return cand.Path, nil
	}
	if !errors.Is(err, touchpad.ErrNoTouchpad) || !cfg.Device.Wait {
		return "", err
	}

	log.Info().Msg("waiting for a touchpad to appear")
	cand, err = touchpad.WaitForTouchpad(ctx)
	if err != nil {
		return "", err
	}
	return cand.Path, nil
}

// ensureReadable probes read access to the event node and walks the
// user through granting it when denied.
func ensureReadable(path string) error {
	err := permissions.Probe(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, permissions.ErrDenied) {
		return err
	}

	if err := permissions.Remediate(path, os.Stdin, os.Stderr); err != nil {
		return err
	}
	return permissions.Probe(path)
}

// runSession wires the interpreter, the output sink, and the session
// together and runs until the stream ends, a click lands, or the
// context is cancelled.
func runSession(ctx context.Context, dev touchpad.Device, locker pointerlock.Locker, cfg *config.Config) error {
	cal, err := touchpad.Calibrate(dev)
	if err != nil {
		return err
	}

	sink, err := output.New(cfg.Output.Format, os.Stdout)
	if err != nil {
		return err
	}

	sess := session.New(dev, locker, touch.NewInterpreter(cal))
	sess.OnPosition(func(p touch.Position) {
		if err := sink.Write(p); err != nil {
			log.Warn().Err(err).Msg("writing position")
		}
	})

	return sess.Run(ctx)
}
