package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/session"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the session store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		switch cfg.Store.Driver {
		case "sqlite":
			s, err := session.NewSQLite(cfg.Store.SQLitePath)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Migrate(ctx); err != nil {
				return err
			}
		case "postgres":
			s, err := session.NewPostgres(ctx, cfg.Store.DatabaseURL)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Migrate(ctx); err != nil {
				return err
			}
		case "", "memory":
			return eris.New("memory store has no schema to migrate")
		default:
			return eris.Errorf("unknown store driver %q", cfg.Store.Driver)
		}

		zap.L().Info("migration complete", zap.String("driver", cfg.Store.Driver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
