package main

import (
	"fmt"
	"os"

	"github.com/asterpro/absTouch/internal/config"
	"github.com/asterpro/absTouch/internal/pointerlock"
	"github.com/asterpro/absTouch/internal/touchpad"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record FILE",
	Short: "Run a session and save the raw event stream to FILE",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
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

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating recording: %w", err)
	}
	defer f.Close()

	rec, err := touchpad.NewRecording(dev, f)
	if err != nil {
		return err
	}

	locker, err := pointerlock.ForSession(cfg.Lock.Backend, dev.Name(), dev)
	if err != nil {
		return err
	}

	return runSession(ctx, rec, locker, cfg)
}
