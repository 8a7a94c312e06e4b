package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantolabs/fourcorner-cli/internal/core/services"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_Short(t *testing.T) {
	assert.Equal(t, "Fetch the dataset and rebuild the index", ingestCmd.Short)
}

func TestIngestCmd_HasFileFlag(t *testing.T) {
	require.NotNil(t, ingestCmd.Flags().Lookup("file"))
}

func TestIngestCmd_ErrorsWithoutService(t *testing.T) {
	oldIngest := ingestService
	ingestService = nil
	defer func() {
		ingestService = oldIngest
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ingest service not configured")
}

func TestIngestCmd_ReportsAcceptedCount(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Ingested 4 records from stub")
}

func TestIngestCmd_FromFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempDataset(t, testDataset)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "--file", path})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestFile = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Ingested 4 records from file:"+path)
}

func TestIngestCmd_SuggestsManualFileOnFetchFailure(t *testing.T) {
	ingestor := services.NewIngestor(nil, nil, "|")
	lookup := services.NewLookupService(ingestor)
	SetServices(ingestor, lookup)
	defer func() {
		ingestService = nil
		lookupService = nil
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--file")
}
