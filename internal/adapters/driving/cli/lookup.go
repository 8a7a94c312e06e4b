package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

var (
	lookupJSON bool
	lookupFile string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [code prefix]",
	Short: "Look up characters by code prefix",
	Long: `Searches the index for every character whose classification code
starts with the given digits. Exact matches sort first, the rest in
ascending code order.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output results as JSON")
	lookupCmd.Flags().StringVar(&lookupFile, "file", "", "ingest this dataset file instead of the default source")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	if lookupService == nil || ingestService == nil {
		return errors.New("services not configured")
	}

	if err := ensureIngested(cmd.Context(), lookupFile); err != nil {
		return err
	}

	results, err := lookupService.Lookup(prefix)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if lookupJSON {
		return outputLookupJSON(cmd, results)
	}
	return outputLookupTable(cmd, results)
}

// ensureIngested builds the index if no run has published one yet.
// file overrides the default source; a failed default fetch comes back
// with guidance to supply the dataset manually.
func ensureIngested(ctx context.Context, file string) error {
	if lookupService.Ready() && file == "" {
		return nil
	}

	if file != "" {
		info, err := ingestService.IngestFile(ctx, file)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", file, err)
		}
		logger.Info("Ingested %d records from %s", info.Accepted, info.Source)
		return nil
	}

	info, err := ingestService.Ingest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) || errors.Is(err, domain.ErrNoCodeColumn) {
			return fmt.Errorf("%w\nsupply the dataset manually with --file <path>", err)
		}
		return err
	}
	logger.Info("Ingested %d records from %s", info.Accepted, info.Source)
	return nil
}

func outputLookupJSON(cmd *cobra.Command, results []domain.Record) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputLookupTable(cmd *cobra.Command, results []domain.Record) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d):\n\n", len(results))
	for i := range results {
		r := &results[i]
		cmd.Printf("  %s  %-6s %s", r.Character, r.Code, r.Pinyin)
		if r.Cantonese != "" {
			cmd.Printf(" [%s]", r.Cantonese)
		}
		cmd.Printf("  %s\n", r.Definition)
	}
	return nil
}
