package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/algo-wallet/docs"
	"github.com/AlexZinkM/algo-wallet/internal/api"
	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/logger"
	"github.com/AlexZinkM/algo-wallet/wallet"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the wallet HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "Port to listen on (overrides PORT)",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Value: 10 * time.Second,
				Usage: "How long to wait for in-flight requests on shutdown",
			},
		},
		Action: func(c *cli.Context) error {
			if err := loadConfig(c); err != nil {
				return err
			}
			if c.IsSet("port") {
				config.Get().Port = c.String("port")
			}

			log := logger.New(config.Get().LogLevel)

			directory, err := wallet.LoadDirectory(config.GetAccountsFilePath())
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			router, err := api.SetupRouter(directory, log, registry)
			if err != nil {
				return fmt.Errorf("failed to set up router: %w", err)
			}

			server := &http.Server{
				Addr:              ":" + config.GetPort(),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().
					Str("addr", server.Addr).
					Int("known_accounts", len(directory)).
					Msg("starting server")
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Duration("shutdown-timeout"))
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}
