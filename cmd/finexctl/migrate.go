package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finex/backend/internal/infra/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()
			cfg.Database.AutoMigrate = true

			database, err := db.NewPostgresConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.Migrate(); err != nil {
				return err
			}

			fmt.Println(successStyle.Render("Schema is up to date"))
			return nil
		},
	}
}
