package main

import (
	"fmt"

	"github.com/artpar/pagekit/bootstrap"
	"github.com/artpar/pagekit/core/example"
	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
	"github.com/spf13/cobra"
)

var (
	hotReload bool
	demoPage  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the bundled example pages",
	Long: `Start a schema server hosting one of the bundled example pages.

The server will:
  - Load configuration from pagekit.yaml (or --config), falling back to
    PAGEKIT_* environment variables, then defaults (zero config works)
  - Build the selected example page and its action handlers
  - Serve GET /schema, POST /action, GET /health, and the embedded
    browser client at /

Environment variables (for Docker deployments):
  PAGEKIT_SERVER_PORT     - Server port (default: 8080)
  PAGEKIT_LOG_LEVEL       - Log level: debug, info, warn, error
  PAGEKIT_METRICS_ENABLED - Expose Prometheus metrics at /metrics
  PAGEKIT_AUDIT_DRIVER    - Invocation audit trail: none, memory, sqlite

Examples:
  pagekit serve
  pagekit serve --page greeter
  pagekit serve --config /etc/pagekit/config.yaml --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
	serveCmd.Flags().StringVar(&demoPage, "page", "showcase", "example page to serve: greeter or showcase")
}

func runServe(cmd *cobra.Command, args []string) error {
	var (
		s   schema.Schema
		reg *runtime.Registry
		err error
	)
	switch demoPage {
	case "greeter":
		s, reg, err = example.Greeter()
	case "showcase":
		s, reg, err = example.Showcase()
	default:
		return fmt.Errorf("unknown example page %q", demoPage)
	}
	if err != nil {
		return fmt.Errorf("build example page: %w", err)
	}

	app, err := bootstrap.New(bootstrap.Options{
		Schema:     s,
		Registry:   reg,
		ConfigPath: cfgFile,
		Watch:      hotReload,
	})
	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	// Run (blocks until shutdown)
	return app.Run()
}
