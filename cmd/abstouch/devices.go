package main

import (
	"errors"
	"fmt"

	"github.com/asterpro/absTouch/internal/touchpad"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List touchpads found via udev",
	RunE:  runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	candidates, err := touchpad.Discover()
	if errors.Is(err, touchpad.ErrNoTouchpad) {
		fmt.Println("No touchpads found.")
		return nil
	}
	if err != nil {
		return err
	}

	for _, c := range candidates {
		fmt.Printf("%s  %s\n", c.Path, c.Name)
	}
	return nil
}
