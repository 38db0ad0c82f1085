package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/burnbite/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:       "set <key> <value>",
	Short:     "Change a preference (log_level, log_file, export_dir)",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	stored, _ := cfg.Get(key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to '%s'", key, Primary(stored))))
	return nil
}
