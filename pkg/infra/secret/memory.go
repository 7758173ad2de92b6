package secret

import (
	"context"
	"sync"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory is a process-local SecretStore. Entries are lost when the process exits.
type Memory struct {
	mu      sync.RWMutex
	secrets map[types.Account]types.Secret
}

var _ interfaces.SecretStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		secrets: make(map[types.Account]types.Secret),
	}
}

func (x *Memory) GetSecret(ctx context.Context, account types.Account) (types.Secret, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	secret, exists := x.secrets[account]
	if !exists {
		return "", goerr.Wrap(types.ErrSecretNotFound, "secret is not stored",
			goerr.V("account", account),
		)
	}
	return secret, nil
}

func (x *Memory) SetSecret(ctx context.Context, account types.Account, secret types.Secret) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.secrets[account] = secret
	return nil
}

func (x *Memory) DeleteSecret(ctx context.Context, account types.Account) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	delete(x.secrets, account)
	return nil
}
