package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/focus-hub/focus-core/pkg/cli/config"
	"github.com/focus-hub/focus-core/pkg/controller/server"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand(x *CLI) *cli.Command {
	var (
		addr         string
		allowOrigins []string

		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("FOCUSHUB_ADDR"),
			Destination: &addr,
		},
		&cli.StringSliceFlag{
			Name:        "allow-origin",
			Usage:       "Browser origin allowed to call the commands (e.g. tauri://localhost)",
			Sources:     cli.EnvVars("FOCUSHUB_ALLOW_ORIGIN"),
			Destination: &allowOrigins,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the commands over a loopback HTTP bridge",
		Flags: slice.Flatten(
			serveFlags,
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("AllowOrigins", allowOrigins),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, err := x.newUseCase()
			if err != nil {
				return err
			}

			var options []server.Option
			for _, origin := range allowOrigins {
				options = append(options, server.WithAllowOrigin(origin))
			}
			s := server.New(uc, options...)

			serverErr := make(chan error, 1)
			httpServer := newHTTPServer(addr, s.Mux())

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

// newHTTPServer bounds only how long a client may take to send its request. Responses have no
// write deadline because get_repo_details waits on several GitHub calls in sequence.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: handler,

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
	}
}
