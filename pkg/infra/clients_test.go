package infra_test

import (
	"testing"

	"github.com/focus-hub/focus-core/pkg/domain/mock"
	"github.com/focus-hub/focus-core/pkg/infra"
	"github.com/focus-hub/focus-core/pkg/infra/secret"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.SecretStore()).Equal(nil)
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.Agent()).Equal(nil)
	})

	t.Run("WithSecretStore option sets secret store", func(t *testing.T) {
		store := secret.NewMemory()
		clients := infra.New(infra.WithSecretStore(store))
		gt.V(t, clients.SecretStore()).Equal(store)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockAgent := &mock.AgentMock{}
		mockStore := &mock.SecretStoreMock{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithAgent(mockAgent),
			infra.WithSecretStore(mockStore),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.Agent()).Equal(mockAgent)
		gt.V(t, clients.SecretStore()).Equal(mockStore)
	})
}
