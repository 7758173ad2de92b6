package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . SecretStore GitHub Agent

import (
	"context"

	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
)

// SecretStore keeps API credentials under a fixed service identifier
type SecretStore interface {
	// GetSecret returns types.ErrSecretNotFound if no entry exists for the account.
	GetSecret(ctx context.Context, account types.Account) (types.Secret, error)
	SetSecret(ctx context.Context, account types.Account, secret types.Secret) error
	// DeleteSecret does not fail when the entry is already absent.
	DeleteSecret(ctx context.Context, account types.Account) error
}

type GitHub interface {
	SearchRepositories(ctx context.Context, query string, token types.Secret) ([]*model.Repository, error)
	GetRepositoryDetails(ctx context.Context, input *model.RepoDetailsInput, token types.Secret) (*model.RepositoryDetails, error)
}

type Agent interface {
	StartSession(ctx context.Context, input *model.StartSessionInput, token types.Secret) (*model.AgentSession, error)
}
