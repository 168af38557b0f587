package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"profeed/config"
	"profeed/database"
	"profeed/handlers"
	"profeed/logger"
	"profeed/repositories"
	"profeed/routes"
	"profeed/session"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
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

			var store session.Store
			if cfg.RedisAddr != "" {
				redisStore, err := session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
				if err != nil {
					return err
				}
				defer redisStore.Close()
				store = redisStore
			} else {
				memStore := session.NewMemoryStore(cfg.SessionTTL)
				defer memStore.Close()
				store = memStore
			}
			sessions := session.NewManager(store, []byte(cfg.SessionSecret), cfg.SessionTTL)

			userRepo := repositories.NewUserRepository(db)
			feedRepo := repositories.NewFeedRepository(db)

			userHandler := handlers.NewUserHandler(userRepo, sessions)
			feedHandler := handlers.NewFeedHandler(feedRepo, userRepo, sessions)
			profileHandler, err := handlers.NewProfileHandler(userRepo)
			if err != nil {
				return err
			}
			systemHandler := handlers.NewSystemHandler(db)

			router := routes.SetupRoutes(userHandler, feedHandler, profileHandler, systemHandler)
			srv := &http.Server{Addr: cfg.ListenAddr, Handler: router}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			logrus.WithField("addr", cfg.ListenAddr).Info("server started")

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				return err
			}
		},
	}
}
