// @title Coins Guard API
// @version 1.0.0
// @description Collects crypto asset recovery requests and contact messages.
// @BasePath /
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// envFile is an explicit dotenv file loaded before configuration
var envFile string

var rootCmd = &cobra.Command{
	Use:           "coinsguard-api",
	Short:         "Coins Guard form backend",
	Long:          `Receives recovery requests and contact messages, validates them and stores them in a document database.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this dotenv file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
