package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/artpar/pagekit/adapters/sqlite"
	"github.com/artpar/pagekit/config"
	"github.com/artpar/pagekit/domain/audit"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "View the invocation audit trail",
	Long: `View recorded action invocations from a sqlite audit trail.

Requires audit.driver "sqlite" in the server's configuration; the
in-memory trail lives and dies with the server process.

Examples:
  pagekit audit recent --limit=20
  pagekit audit summary`,
}

var auditRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent invocations",
	RunE:  runAuditRecent,
}

var auditSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show outcome counts over recent invocations",
	RunE:  runAuditSummary,
}

var auditLimit int

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.AddCommand(auditRecentCmd)
	auditCmd.AddCommand(auditSummaryCmd)

	auditRecentCmd.Flags().IntVar(&auditLimit, "limit", 20, "number of invocations to show")
	auditSummaryCmd.Flags().IntVar(&auditLimit, "limit", 1000, "number of invocations to aggregate")
}

func openAuditStore() (*sqlite.DB, *sqlite.AuditStore, error) {
	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Audit.Driver != "sqlite" {
		return nil, nil, fmt.Errorf("audit driver is %q; only the sqlite trail can be read offline", cfg.Audit.Driver)
	}

	db, err := sqlite.Open(cfg.Audit.DSN)
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewAuditStore(db), nil
}

func runAuditRecent(cmd *cobra.Command, args []string) error {
	db, store, err := openAuditStore()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := store.Recent(context.Background(), auditLimit)
	if err != nil {
		return fmt.Errorf("read audit trail: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No invocations recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tOUTCOME\tUPDATES\tLATENCY\tERROR")
	fmt.Fprintln(w, "----\t------\t-------\t-------\t-------\t-----")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d ms\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Action,
			e.Outcome,
			e.Updates,
			e.LatencyMs,
			e.Error,
		)
	}
	w.Flush()
	return nil
}

func runAuditSummary(cmd *cobra.Command, args []string) error {
	db, store, err := openAuditStore()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := store.Recent(context.Background(), auditLimit)
	if err != nil {
		return fmt.Errorf("read audit trail: %w", err)
	}

	s := audit.Summarize(events)
	fmt.Printf("Invocations: %d\n", s.Total)
	fmt.Printf("Errors:      %d\n", s.Errors)
	fmt.Printf("Not found:   %d\n", s.NotFound)
	return nil
}
