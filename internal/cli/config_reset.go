package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/burnbite/internal/config"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Reset all preferences to their defaults",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		var confirm ConfirmFunc
		if yes {
			confirm = AlwaysYes()
		} else {
			confirm = NewConfirmFunc()
		}

		return runConfigReset(cmd, homeDir, confirm)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	confirmed, err := confirm("Reset all preferences to defaults?")
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	if err := config.Write(homeDir, config.Default()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("preferences reset to defaults"))
	return nil
}
