package main

import (
	"fmt"
	"os"

	"github.com/artpar/pagekit/adapters/sqlite"
	"github.com/artpar/pagekit/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration before deployment",
	Long: `Validate the pagekit configuration file.

Checks:
  - YAML syntax is valid
  - Values are within accepted ranges
  - Audit database is writable (optional)

Examples:
  pagekit validate
  pagekit validate --config /etc/pagekit/config.yaml`,
	RunE: runValidate,
}

var validateCheckDatabase bool

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateCheckDatabase, "check-database", false, "check if the audit database is writable")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating %s...\n\n", cfgFile)

	// Check file exists
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("  %s Config file exists\n", crossMark)
		return fmt.Errorf("config file not found: %s", cfgFile)
	}
	fmt.Printf("  %s Config file exists\n", checkMark)

	// Load and validate config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("  %s Config syntax valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Printf("  %s Config syntax valid\n", checkMark)

	// Show config summary
	fmt.Printf("  %s Server: %s:%d\n", checkMark, cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  %s Log level: %s (%s)\n", checkMark, cfg.Logging.Level, cfg.Logging.Format)
	fmt.Printf("  %s Metrics enabled: %t\n", checkMark, cfg.Metrics.Enabled)
	fmt.Printf("  %s Audit driver: %s\n", checkMark, cfg.Audit.Driver)

	// Optional: check audit database
	if validateCheckDatabase && cfg.Audit.Driver == "sqlite" {
		if err := checkDatabaseWritable(cfg.Audit.DSN); err != nil {
			fmt.Printf("  %s Audit database writable\n", crossMark)
			fmt.Printf("      Error: %v\n", err)
		} else {
			fmt.Printf("  %s Audit database writable\n", checkMark)
		}
	}

	fmt.Println()
	fmt.Println("Configuration is valid.")
	return nil
}

func checkDatabaseWritable(dsn string) error {
	db, err := sqlite.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return nil
}

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)
