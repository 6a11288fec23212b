package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/asterpro/absTouch/internal/config"
	"github.com/asterpro/absTouch/internal/pointerlock"
	"github.com/asterpro/absTouch/internal/touchpad"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Re-run the interpreter over a recorded event stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Log.Level); err != nil {
		return err
	}

	ctx, cancel := sessionContext()
	defer cancel()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening recording: %w", err)
	}

	dev, err := touchpad.OpenReplay(filepath.Base(args[0]), f)
	if err != nil {
		f.Close()
		return err
	}
	defer dev.Close()

	return runSession(ctx, dev, pointerlock.Noop{}, cfg)
}
