package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merethin/akari/config"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the daemon's version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", config.AppName, config.Version)
		},
	}
}
