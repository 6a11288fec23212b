package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/asterpro/absTouch/internal/config"
	"github.com/asterpro/absTouch/internal/permissions"
	"github.com/asterpro/absTouch/internal/touchpad"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check config, session tools, and touchpad access",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Abstouch Status ===")
	fmt.Println()

	allOK := true

	// Config file
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n", configPath)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("  Status: found")
	} else {
		fmt.Println("  Status: not found (defaults apply)")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  Load error: %v\n", err)
		allOK = false
	}
	fmt.Println()

	// Session environment
	fmt.Println("Session:")
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	if sessionType == "" {
		sessionType = "unknown"
	}
	fmt.Printf("  Type: %s\n", sessionType)
	if cfg != nil {
		fmt.Printf("  Lock backend: %s\n", cfg.Lock.Backend)
	}
	fmt.Println()

	// Helper binaries for the lock backends and permission
	// remediation. Which ones matter depends on the backend, so a
	// missing tool is informational rather than a failure.
	fmt.Println("Tools:")
	for _, tool := range []string{"xinput", "gsettings", "dconf", "pkexec", "setfacl"} {
		if _, err := exec.LookPath(tool); err == nil {
			fmt.Printf("  %s: found\n", tool)
		} else {
			fmt.Printf("  %s: NOT FOUND\n", tool)
		}
	}
	fmt.Println()

	// Touchpads
	fmt.Println("Touchpads:")
	candidates, err := touchpad.Discover()
	switch {
	case errors.Is(err, touchpad.ErrNoTouchpad):
		fmt.Println("  None found")
		allOK = false
	case err != nil:
		fmt.Printf("  Discovery error: %v\n", err)
		allOK = false
	default:
		for _, c := range candidates {
			if err := permissions.Probe(c.Path); err == nil {
				fmt.Printf("  %s (%s): readable\n", c.Path, c.Name)
			} else {
				fmt.Printf("  %s (%s): NOT READABLE\n", c.Path, c.Name)
				allOK = false
			}
		}
	}
	fmt.Println()

	if allOK {
		fmt.Println("All checks passed.")
	} else {
		fmt.Println("Some checks failed. Run 'abstouch setup' to configure.")
	}

	return nil
}
