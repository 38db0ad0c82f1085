package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/burnbite/internal/config"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Show one or all preferences",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		key := ""
		if len(args) > 0 {
			key = args[0]
		}
		return runConfigGet(cmd, homeDir, key)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		v, err := cfg.Get(key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, v)
		return nil
	}

	for _, k := range config.Keys() {
		v, _ := cfg.Get(k)
		if v == "" {
			v = Silent("(not set)")
		} else {
			v = Primary(v)
		}
		_, _ = fmt.Fprintf(w, "%s = %s\n", Text(k), v)
	}
	return nil
}
