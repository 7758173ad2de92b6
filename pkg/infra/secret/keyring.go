package secret

import (
	"context"
	"errors"
	"log/slog"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/zalando/go-keyring"
)

// Keyring stores secrets in the OS credential store (macOS Keychain, Secret Service,
// Windows Credential Manager).
type Keyring struct {
	service string
}

var _ interfaces.SecretStore = (*Keyring)(nil)

type KeyringOption func(*Keyring)

// WithService overrides the service identifier. Only tests use it, to keep their entries
// apart from the application's.
func WithService(service string) KeyringOption {
	return func(x *Keyring) {
		x.service = service
	}
}

func NewKeyring(options ...KeyringOption) *Keyring {
	client := &Keyring{
		service: types.SecretServiceName,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Keyring) GetSecret(ctx context.Context, account types.Account) (types.Secret, error) {
	value, err := keyring.Get(x.service, string(account))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", goerr.Wrap(types.ErrSecretNotFound, "secret is not stored",
				goerr.V("service", x.service),
				goerr.V("account", account),
			)
		}
		return "", goerr.Wrap(types.Classify(types.ErrStoreUnavailable, err), "failed to read secret from keyring",
			goerr.V("service", x.service),
			goerr.V("account", account),
		)
	}

	return types.Secret(value), nil
}

func (x *Keyring) SetSecret(ctx context.Context, account types.Account, secret types.Secret) error {
	if err := keyring.Set(x.service, string(account), string(secret)); err != nil {
		return goerr.Wrap(types.Classify(types.ErrStoreUnavailable, err), "failed to write secret to keyring",
			goerr.V("service", x.service),
			goerr.V("account", account),
		)
	}

	logging.From(ctx).Debug("secret saved",
		slog.String("service", x.service),
		slog.Any("account", account),
		slog.Any("secret", secret),
	)
	return nil
}

func (x *Keyring) DeleteSecret(ctx context.Context, account types.Account) error {
	if err := keyring.Delete(x.service, string(account)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return goerr.Wrap(types.Classify(types.ErrStoreUnavailable, err), "failed to delete secret from keyring",
			goerr.V("service", x.service),
			goerr.V("account", account),
		)
	}
	return nil
}
