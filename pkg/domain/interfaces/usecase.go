package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
)

type UseCase interface {
	SearchRepos(ctx context.Context, query string) ([]*model.Repository, error)
	GetRepoDetails(ctx context.Context, input *model.RepoDetailsInput) (*model.RepositoryDetails, error)
	DispatchAgent(ctx context.Context, input *model.StartSessionInput) (*model.AgentSession, error)
	SaveAPIKeys(ctx context.Context, github, jules types.Secret) error
	ClearAPIKeys(ctx context.Context) error
	GetAPIKeysStatus(ctx context.Context) bool
}
