package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pagekit",
	Short: "Server-driven UI pages with typed action handlers",
	Long: `Pagekit declares a page of UI components and server-side action
handlers in Go, then keeps a browser-rendered view synchronized with
that declaration over a small JSON protocol.

Quick start:
  pagekit serve     # Serve the bundled example pages
  pagekit validate  # Validate a configuration file`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "pagekit.yaml", "config file path")
}
