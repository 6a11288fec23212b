package main

import (
	"fmt"

	"github.com/asterpro/absTouch/internal/buildinfo"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the abstouch version",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Println(buildinfo.Version())
	return nil
}
