package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"profeed/config"
	"profeed/database"
	"profeed/logger"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.LogLevel)

			db, err := database.New(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
			if err != nil {
				return err
			}

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			logrus.Info("migrations applied")
			return nil
		},
	}
}
