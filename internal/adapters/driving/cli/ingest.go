package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
)

var ingestFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch the dataset and rebuild the index",
	Long: `Fetches the character dataset from the configured source, detects
the classification-code column, validates every row and rebuilds the
index. Reports the number of accepted records.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "ingest this dataset file instead of the default source")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	var (
		info driving.IngestInfo
		err  error
	)
	if ingestFile != "" {
		info, err = ingestService.IngestFile(cmd.Context(), ingestFile)
	} else {
		info, err = ingestService.Ingest(cmd.Context())
	}

	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) || errors.Is(err, domain.ErrNoCodeColumn) {
			return fmt.Errorf("%w\nsupply the dataset manually with --file <path>", err)
		}
		return err
	}

	cmd.Printf("Ingested %d records from %s (run %s)\n",
		info.Accepted, info.Source, info.RunID)
	return nil
}
