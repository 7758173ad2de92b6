package usecase

import (
	"context"

	"github.com/focus-hub/focus-core/pkg/domain/types"
)

// Export unexported functions for testing
func (x *UseCase) ResolveTokenForTest(ctx context.Context, account types.Account) (types.Secret, error) {
	return x.resolveToken(ctx, account)
}
