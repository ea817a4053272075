// cmd is the application entry point. Each subcommand wires the layers it
// needs from the environment configuration.
package main

import (
	"os"

	"github.com/Shivanand-hulikatti/event-finder/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "event-finder",
	Short: "Public event search API",
	Long: `event-finder serves searchable public events (lectures, exhibitions,
festivals, ...) with registration status, district lookup and per-user
favorites and view history.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if err := c.SetupLogging(); err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
