package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	configfile "github.com/cantolabs/fourcorner-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration values stored in the config file.

Known keys:
  dataset.url        URL the dataset is fetched from
  dataset.delimiter  field delimiter of the dataset (default "|")
  cache.enabled      keep an offline copy of the dataset (default true)
  cache.data_dir     directory holding the offline copy`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()
	cmd.Println("[Dataset]")
	cmd.Printf("  URL: %s\n", valueOrDefault(configStore.GetString(configfile.KeyDatasetURL), "(default)"))
	cmd.Printf("  Delimiter: %s\n", valueOrDefault(configStore.GetString(configfile.KeyDelimiter), "|"))
	cmd.Println()
	cmd.Println("[Cache]")
	enabled := "yes"
	if v, ok := configStore.Get(configfile.KeyCacheEnabled); ok {
		if b, isBool := v.(bool); isBool && !b {
			enabled = "no"
		}
	}
	cmd.Printf("  Enabled: %s\n", enabled)
	cmd.Printf("  Data dir: %s\n", valueOrDefault(configStore.GetString(configfile.KeyDataDir), "(default)"))
	cmd.Println()
	cmd.Printf("Config file: %s\n", configStore.Path())

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	var value any = raw
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
