package main

import (
	"fmt"
	"os"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driven/cache/sqlite"
	configfile "github.com/cantolabs/fourcorner-cli/internal/adapters/driven/config/file"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driven/source"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/cli"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driven"
	"github.com/cantolabs/fourcorner-cli/internal/core/services"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

// defaultDatasetURL is used when the config file does not set dataset.url.
const defaultDatasetURL = "https://raw.githubusercontent.com/cantolabs/fourcorner-data/main/fourcorner.txt"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	url := cfg.GetString(configfile.KeyDatasetURL)
	if url == "" {
		url = defaultDatasetURL
	}
	delimiter := cfg.GetString(configfile.KeyDelimiter)

	cacheEnabled := true
	if _, ok := cfg.Get(configfile.KeyCacheEnabled); ok {
		cacheEnabled = cfg.GetBool(configfile.KeyCacheEnabled)
	}

	var cache driven.DatasetCache
	if cacheEnabled {
		c, err := sqlite.NewCache(cfg.GetString(configfile.KeyDataDir))
		if err != nil {
			logger.Warn("dataset cache unavailable: %v", err)
		} else {
			cache = c
			defer c.Close()
		}
	}

	ingestor := services.NewIngestor(source.NewHTTPSource(url, nil), cache, delimiter)
	lookup := services.NewLookupService(ingestor)

	cli.SetServices(ingestor, lookup)
	cli.SetConfigStore(cfg)
	return cli.Execute()
}
