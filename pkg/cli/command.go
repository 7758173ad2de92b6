package cli

import (
	"context"

	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func searchCommand(x *CLI) *cli.Command {
	var query string

	return &cli.Command{
		Name:  "search",
		Usage: "Search GitHub repositories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "GitHub search query",
				Required:    true,
				Destination: &query,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}

			repos, err := uc.SearchRepos(ctx, query)
			if err != nil {
				return err
			}
			return printJSON(x.out, repos)
		},
	}
}

func detailsCommand(x *CLI) *cli.Command {
	var input model.RepoDetailsInput

	return &cli.Command{
		Name:  "details",
		Usage: "Show issues, pull requests and README presence of a repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Repository owner",
				Required:    true,
				Destination: &input.Owner,
			},
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "Repository name",
				Required:    true,
				Destination: &input.Repo,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}

			details, err := uc.GetRepoDetails(ctx, &input)
			if err != nil {
				return err
			}
			return printJSON(x.out, details)
		},
	}
}

func dispatchCommand(x *CLI) *cli.Command {
	var input model.StartSessionInput

	return &cli.Command{
		Name:  "dispatch",
		Usage: "Start a Jules agent session for a task",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "task-id",
				Usage:       "Task identifier",
				Required:    true,
				Destination: &input.TaskID,
			},
			&cli.StringFlag{
				Name:        "prompt",
				Usage:       "Instruction for the agent",
				Required:    true,
				Destination: &input.Prompt,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}

			session, err := uc.DispatchAgent(ctx, &input)
			if err != nil {
				return err
			}
			return printJSON(x.out, session)
		},
	}
}
