package cli

import (
	"context"

	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func keysCommand(x *CLI) *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Manage API keys in the OS credential store",
		Commands: []*cli.Command{
			keysSaveCommand(x),
			keysStatusCommand(x),
			keysClearCommand(x),
		},
	}
}

func keysSaveCommand(x *CLI) *cli.Command {
	var github, jules string

	return &cli.Command{
		Name:  "save",
		Usage: "Store the GitHub and Jules API keys",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "github",
				Usage:       "GitHub personal access token",
				Required:    true,
				Sources:     cli.EnvVars("FOCUSHUB_GITHUB_TOKEN"),
				Destination: &github,
			},
			&cli.StringFlag{
				Name:        "jules",
				Usage:       "Jules API key",
				Required:    true,
				Sources:     cli.EnvVars("FOCUSHUB_JULES_TOKEN"),
				Destination: &jules,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}

			if err := uc.SaveAPIKeys(ctx, types.Secret(github), types.Secret(jules)); err != nil {
				return err
			}
			logging.From(ctx).Info("API keys saved")
			return nil
		},
	}
}

func keysStatusCommand(x *CLI) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Print true when both API keys are stored",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			return printJSON(x.out, uc.GetAPIKeysStatus(ctx))
		},
	}
}

func keysClearCommand(x *CLI) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove both API keys",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}

			if err := uc.ClearAPIKeys(ctx); err != nil {
				return err
			}
			logging.From(ctx).Info("API keys removed")
			return nil
		},
	}
}
