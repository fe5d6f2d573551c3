package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/api"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the questionnaire HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		var opts []api.Option
		if !cfg.Server.AccessCodeGate {
			opts = append(opts, api.WithoutAccessGate())
		}
		for _, dest := range []string{"notion", "salesforce"} {
			if exp, err := buildExporter(dest); err == nil {
				opts = append(opts, api.WithExporter(dest, exp))
			}
		}

		server := api.NewServer(env.Service, env.Generator, opts...)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: server.Router(cfg.Server.AllowedOrigins),
		}

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})

		g.Go(func() error {
			sweepEvery := time.Duration(cfg.Questionnaire.IdleSweepMins) * time.Minute
			if sweepEvery <= 0 {
				sweepEvery = 5 * time.Minute
			}
			ticker := time.NewTicker(sweepEvery)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					if n, err := env.Service.SweepIdle(gctx); err != nil {
						zap.L().Warn("idle sweep failed", zap.Error(err))
					} else if n > 0 {
						zap.L().Info("idle sessions swept", zap.Int("count", n))
					}
				}
			}
		})

		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
