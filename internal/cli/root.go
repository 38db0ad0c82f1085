package cli

import (
	"os"
	"time"

	"github.com/Flyrell/burnbite/internal/config"
	"github.com/Flyrell/burnbite/internal/logger"
	"github.com/Flyrell/burnbite/internal/tracker"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = LeafCommand{
	Use:   "burnbite",
	Short: "Log workouts and meals, track calories burned and earn badges",
	Long: "burnbite starts an interactive session for logging workouts and meals.\n" +
		"Everything logged is kept in memory and discarded when the session ends.",
	Args: cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "verbose", Short: "v", Usage: "enable debug logging"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg, err := config.Read(homeDir)
		if err != nil {
			return err
		}
		log, closeLog, err := logger.Open(cfg, cmd.ErrOrStderr(), verbose)
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()

		pk := NewPromptKit()
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			pk = NewLinePromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
		}

		return runSession(&session{
			tracker:   tracker.New(tracker.WithLogger(log)),
			pk:        pk,
			show:      NewDialogFunc(cmd.OutOrStdout()),
			log:       log.With().Str("component", "session").Logger(),
			exportDir: cfg.ExportDir,
			now:       time.Now,
		})
	},
}.Build()

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.SetHelpFunc(colorizedHelpFunc())
}

func Execute() error {
	return rootCmd.Execute()
}
