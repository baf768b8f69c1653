package main

import (
	"log"

	"github.com/hrutik5321/rollpair/internal/app"
	"github.com/hrutik5321/rollpair/internal/db/postgres"
	"github.com/spf13/cobra"
)

func newBrowseCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse trimming plans in PostgreSQL and their pair suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			pg := postgres.New()
			defer func() {
				if err := pg.Close(); err != nil {
					log.Printf("error closing DB: %v", err)
				}
			}()

			program := app.NewProgram(pg, app.Options{
				Conn:     cfg.Database.ConnConfig(),
				MaxWidth: cfg.MaxWidth,
			})
			_, err = program.Run()
			return err
		},
	}
}
