package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	out     io.Writer
	useCase interfaces.UseCase
}

type Option func(*CLI)

// WithOutput sets where command results are written. Default is stdout.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

// WithUseCase replaces the use case built from the OS keyring and the public APIs.
func WithUseCase(uc interfaces.UseCase) Option {
	return func(x *CLI) {
		x.useCase = uc
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		out: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:   "focushub",
		Usage:  "Command backend of Focus Hub: GitHub browsing, agent dispatch and API key storage",
		Writer: x.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("FOCUSHUB_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("FOCUSHUB_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("FOCUSHUB_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			serveCommand(x),
			searchCommand(x),
			detailsCommand(x),
			dispatchCommand(x),
			keysCommand(x),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error",
			slog.Any("error", err),
			slog.String("message", types.Message(err)),
			slog.String("error.kind", types.KindOf(err).String()),
		)
		return err
	}

	return nil
}
