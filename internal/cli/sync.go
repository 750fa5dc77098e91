package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arvarik/oura-go/internal/export"
	"github.com/arvarik/oura-go/oura"
)

var (
	syncDB    string
	syncStart string
	syncEnd   string
)

var syncCmd = &cobra.Command{
	Use:   "sync [resources...]",
	Short: "Archive records into a local SQLite database",
	Long: `Sync fetches records for the given resources (all of them by default)
and archives their raw JSON bodies in a local SQLite database. Each
invocation is recorded as a run with a UUID, and records are upserted
by (resource, id) so repeated syncs refresh rows instead of duplicating
them.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	entries, err := selectEntries(args)
	if err != nil {
		return err
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}
	defer client.Close()

	dbPath := cfg.DatabasePath
	if syncDB != "" {
		dbPath = syncDB
	}
	st, err := export.Open(dbPath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	runID, err := st.BeginRun(ctx, syncStart, syncEnd)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	logger.Info("sync started", "run", runID, "resources", len(entries))

	var opts *oura.ListOptions
	if syncStart != "" || syncEnd != "" {
		opts = &oura.ListOptions{Start: syncStart, End: syncEnd}
	}

	total := 0
	failed := 0
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RESOURCE\tRECORDS")
	for _, e := range entries {
		recs, err := e.list(ctx, client, opts)
		if err != nil {
			failed++
			logger.Warn("fetch failed", "resource", e.name, "error", err)
			fmt.Fprintln(os.Stderr, color.YellowString("skipping %s: %v", e.name, err))
			continue
		}
		if err := st.SaveRecords(ctx, runID, e.name, exportRecords(recs)); err != nil {
			return fmt.Errorf("save %s: %w", e.name, err)
		}
		total += len(recs)
		fmt.Fprintf(w, "%s\t%d\n", e.name, len(recs))
	}
	w.Flush()

	if err := st.CompleteRun(ctx, runID, total); err != nil {
		return fmt.Errorf("complete run: %w", err)
	}
	logger.Info("sync finished", "run", runID, "records", total)

	fmt.Fprintln(os.Stderr, color.GreenString("archived %d records in run %s", total, runID))
	if failed > 0 {
		return fmt.Errorf("%d of %d resources failed", failed, len(entries))
	}
	return nil
}

// selectEntries resolves resource name arguments, defaulting to the
// whole registry.
func selectEntries(names []string) ([]entry, error) {
	if len(names) == 0 {
		return registry, nil
	}
	entries := make([]entry, 0, len(names))
	for _, name := range names {
		e, err := lookup(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func exportRecords(recs []record) []export.Record {
	out := make([]export.Record, len(recs))
	for i, rec := range recs {
		out[i] = export.Record{ID: rec.ID, Day: rec.Day, Body: rec.Body}
	}
	return out
}

func init() {
	syncCmd.Flags().StringVar(&syncDB, "db", "", "SQLite database path (default from config, oura.db)")
	syncCmd.Flags().StringVar(&syncStart, "start", "", "range start (YYYY-MM-DD)")
	syncCmd.Flags().StringVar(&syncEnd, "end", "", "range end (YYYY-MM-DD)")

	rootCmd.AddCommand(syncCmd)
}
