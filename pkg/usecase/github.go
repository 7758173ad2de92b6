package usecase

import (
	"context"
	"log/slog"

	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) SearchRepos(ctx context.Context, query string) ([]*model.Repository, error) {
	token, err := x.resolveToken(ctx, types.AccountGitHub)
	if err != nil {
		return nil, err
	}

	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	repos, err := x.clients.GitHub().SearchRepositories(ctx, query, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search repositories", goerr.V("query", query))
	}

	logging.From(ctx).Info("Searched repositories",
		slog.String("query", query),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}

func (x *UseCase) GetRepoDetails(ctx context.Context, input *model.RepoDetailsInput) (*model.RepositoryDetails, error) {
	if input == nil {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "repository is not specified")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := x.resolveToken(ctx, types.AccountGitHub)
	if err != nil {
		return nil, err
	}

	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	details, err := x.clients.GitHub().GetRepositoryDetails(ctx, input, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository details",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
		)
	}

	logging.From(ctx).Info("Fetched repository details",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Int("issues", len(details.Issues)),
		slog.Int("pull_requests", len(details.PullRequests)),
	)

	return details, nil
}
