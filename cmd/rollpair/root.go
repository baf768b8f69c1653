package main

import (
	"io"
	"log"
	"os"

	"github.com/hrutik5321/rollpair/internal/config"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	config  string
	verbose bool
}

// newRootCmd wires the CLI. Persistent flags are read by loadConfig in
// each subcommand.
func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "rollpair",
		Short:         "Suggest complementary widths for remaining rolls",
		Long:          "Pair the remaining rolls of a trimming plan with the widths that fill the usable width.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(io.Discard)
			if flags.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.config, "config", defaultConfigPath(), "Path to YAML config")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Log load steps to stderr")

	root.AddCommand(newSuggestCmd(&flags))
	root.AddCommand(newBrowseCmd(&flags))

	return root
}

func defaultConfigPath() string {
	if v := os.Getenv("ROLLPAIR_CONFIG"); v != "" {
		return v
	}
	return "rollpair.yaml"
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return cfg, err
	}
	log.Printf("config: max width %v, database %s@%s:%s/%s",
		cfg.MaxWidth, cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	return cfg, nil
}
