package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// resolveToken reads the API token of account. An absent entry becomes a
// CredentialMissingError; other store failures are returned as they are.
func (x *UseCase) resolveToken(ctx context.Context, account types.Account) (types.Secret, error) {
	if x.clients.SecretStore() == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "secret store is not configured")
	}

	token, err := x.clients.SecretStore().GetSecret(ctx, account)
	if err != nil {
		if errors.Is(err, types.ErrSecretNotFound) {
			logging.From(ctx).Info("API key is not configured", slog.Any("account", account))
			return "", goerr.Wrap(&types.CredentialMissingError{Service: account.Label()},
				"failed to resolve API token",
				goerr.V("account", account),
			)
		}
		return "", goerr.Wrap(err, "failed to resolve API token", goerr.V("account", account))
	}

	return token, nil
}

// SaveAPIKeys stores both API keys, GitHub first. The first failed write aborts the
// operation; a key already written is not rolled back.
func (x *UseCase) SaveAPIKeys(ctx context.Context, github, jules types.Secret) error {
	if x.clients.SecretStore() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "secret store is not configured")
	}

	keys := map[types.Account]types.Secret{
		types.AccountGitHub: github,
		types.AccountJules:  jules,
	}
	for _, account := range types.Accounts() {
		if err := x.clients.SecretStore().SetSecret(ctx, account, keys[account]); err != nil {
			return goerr.Wrap(err, "failed to save API key", goerr.V("account", account))
		}
	}

	logging.From(ctx).Info("API keys saved")
	return nil
}

// ClearAPIKeys removes both API keys. The first failed delete aborts the operation.
func (x *UseCase) ClearAPIKeys(ctx context.Context) error {
	if x.clients.SecretStore() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "secret store is not configured")
	}

	for _, account := range types.Accounts() {
		if err := x.clients.SecretStore().DeleteSecret(ctx, account); err != nil {
			return goerr.Wrap(err, "failed to delete API key", goerr.V("account", account))
		}
	}

	logging.From(ctx).Info("API keys cleared")
	return nil
}

// GetAPIKeysStatus reports whether both API keys can be read. Any failure, including an
// unreachable store, counts as not configured.
func (x *UseCase) GetAPIKeysStatus(ctx context.Context) bool {
	if x.clients.SecretStore() == nil {
		return false
	}

	for _, account := range types.Accounts() {
		if _, err := x.clients.SecretStore().GetSecret(ctx, account); err != nil {
			logging.From(ctx).Debug("API key is not available",
				slog.Any("account", account),
				slog.String("error.kind", types.KindOf(err).String()),
			)
			return false
		}
	}

	return true
}
