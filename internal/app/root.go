package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/config"
	"github.com/blackwell-systems/lendctl/internal/loan"
	"github.com/blackwell-systems/lendctl/internal/lookup"
	"github.com/blackwell-systems/lendctl/internal/store"
	"github.com/blackwell-systems/lendctl/internal/util"
)

var (
	cfg    *config.Config
	log    *logrus.Logger
	books  *catalog.Manager
	loans  *loan.Manager
	looker *lookup.Client

	flagNoColor bool
	flagConfig  string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "lendctl",
	Short: "Manage a personal book catalog and its loans from the terminal",
	Long: `lendctl keeps a book catalog and time-boxed loans against it.

Books and loans are stored as JSON collections in a local data directory.
The details view can suggest similar titles via the itbook.store search API.

Run 'lendctl browse' for the interactive browser, or use the subcommands
for scripted use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/lendctl/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory override")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.WarnLevel)

		if flagConfig != "" {
			os.Setenv("LENDCTL_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = config.ExpandHome(flagDataDir)
		}

		st := store.NewFileStore(cfg.DataDir)
		books = catalog.NewManager(st, log)
		loans = loan.NewManager(st, books, log)
		books.NotifyDelete(func(bookID string) {
			loans.RemoveForBook(bookID)
		})

		if err := books.Open(); err != nil {
			return err
		}
		if err := loans.Open(); err != nil {
			return err
		}

		looker = lookup.New(cfg.Lookup.APIBase, lookupTimeout(cfg), cfg.Lookup.MaxResults)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newEditCmd(),
		newSelectCmd(),
		newDeleteCmd(),
		newListCmd(),
		newLendCmd(),
		newReturnCmd(),
		newLoansCmd(),
		newInfoCmd(),
		newBrowseCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)
}
