package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/asterpro/absTouch/internal/config"
	"github.com/asterpro/absTouch/internal/touchpad"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup: pick a touchpad and write the config file",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("=== Abstouch Setup ===")
	fmt.Println()

	// Load existing config as defaults
	existing, _ := config.Load()
	if existing == nil {
		existing = &config.Config{}
	}

	cfg := &config.Config{}

	// Touchpad selection
	fmt.Println("-- Touchpad --")
	candidates, err := touchpad.Discover()
	if err == nil {
		for _, c := range candidates {
			fmt.Printf("  %s  %s\n", c.Path, c.Name)
		}
	} else {
		fmt.Printf("  Discovery failed: %v\n", err)
	}
	cfg.Device.Path = prompt(reader, "Device path (empty to discover at startup)", existing.Device.Path)

	wait := prompt(reader, "Wait for a touchpad at startup (true/false)", strconv.FormatBool(existing.Device.Wait))
	cfg.Device.Wait, err = strconv.ParseBool(wait)
	if err != nil {
		return fmt.Errorf("parsing wait answer %q: %w", wait, err)
	}
	fmt.Println()

	// Pointer lock
	fmt.Println("-- Pointer lock --")
	cfg.Lock.Backend = prompt(reader, "Backend (auto/xinput/gsettings/grab/none)", existing.Lock.Backend)
	fmt.Println()

	// Output
	fmt.Println("-- Output --")
	cfg.Output.Format = prompt(reader, "Format (text/jsonl)", existing.Output.Format)
	cfg.Log.Level = prompt(reader, "Log level (debug/info/warn/error)", existing.Log.Level)
	fmt.Println()

	// Write config file
	if err := config.WriteConfigFile(cfg); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	fmt.Printf("Config written to %s\n", config.DefaultConfigPath())
	fmt.Println("Setup complete!")
	return nil
}

// prompt asks for a value with an optional default.
func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("  %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("  %s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal
	}
	return line
}
