package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for SecretStore
// This is the main entry point for testing any SecretStore implementation
func TestAll(t *testing.T, store interfaces.SecretStore) {
	t.Run("SetAndGet", func(t *testing.T) {
		TestSetAndGet(t, store)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, store)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, store)
	})
	t.Run("EmptySecret", func(t *testing.T) {
		TestEmptySecret(t, store)
	})
	t.Run("Delete", func(t *testing.T) {
		TestDelete(t, store)
	})
	t.Run("AccountsAreIndependent", func(t *testing.T) {
		TestAccountsAreIndependent(t, store)
	})
}

func newAccount() types.Account {
	return types.Account(fmt.Sprintf("account-%s", uuid.New().String()[:8]))
}

func TestSetAndGet(t *testing.T, store interfaces.SecretStore) {
	ctx := context.Background()
	account := newAccount()

	gt.NoError(t, store.SetSecret(ctx, account, "s3cr3t"))

	secret := gt.R1(store.GetSecret(ctx, account)).NoError(t)
	gt.V(t, secret).Equal(types.Secret("s3cr3t"))
}

func TestOverwrite(t *testing.T, store interfaces.SecretStore) {
	ctx := context.Background()
	account := newAccount()

	gt.NoError(t, store.SetSecret(ctx, account, "first"))
	gt.NoError(t, store.SetSecret(ctx, account, "second"))

	secret := gt.R1(store.GetSecret(ctx, account)).NoError(t)
	gt.V(t, secret).Equal(types.Secret("second"))
}

func TestNotFound(t *testing.T, store interfaces.SecretStore) {
	ctx := context.Background()

	_, err := store.GetSecret(ctx, newAccount())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrSecretNotFound))
	gt.V(t, types.KindOf(err)).Equal(types.ErrorKindSecretNotFound)
}

func TestEmptySecret(t *testing.T, store interfaces.SecretStore) {
	ctx := context.Background()
	account := newAccount()

	gt.NoError(t, store.SetSecret(ctx, account, ""))

	secret := gt.R1(store.GetSecret(ctx, account)).NoError(t)
	gt.V(t, secret).Equal(types.Secret(""))
}

func TestDelete(t *testing.T, store interfaces.SecretStore) {
	ctx := context.Background()
	account := newAccount()

	gt.NoError(t, store.SetSecret(ctx, account, "to-be-deleted"))
	gt.NoError(t, store.DeleteSecret(ctx, account))

	_, err := store.GetSecret(ctx, account)
	gt.True(t, errors.Is(err, types.ErrSecretNotFound))

	// Deleting again is not an error
	gt.NoError(t, store.DeleteSecret(ctx, account))
}

func TestAccountsAreIndependent(t *testing.T, store interfaces.SecretStore) {
	ctx := context.Background()
	a1 := newAccount()
	a2 := newAccount()

	gt.NoError(t, store.SetSecret(ctx, a1, "one"))
	gt.NoError(t, store.SetSecret(ctx, a2, "two"))
	gt.NoError(t, store.DeleteSecret(ctx, a1))

	secret := gt.R1(store.GetSecret(ctx, a2)).NoError(t)
	gt.V(t, secret).Equal(types.Secret("two"))
}
