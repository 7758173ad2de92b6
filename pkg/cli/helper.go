package cli

import (
	"encoding/json"
	"io"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/infra"
	"github.com/focus-hub/focus-core/pkg/infra/github"
	"github.com/focus-hub/focus-core/pkg/infra/jules"
	"github.com/focus-hub/focus-core/pkg/infra/secret"
	"github.com/focus-hub/focus-core/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// newUseCase returns the injected use case, or wires one to the OS keyring and the public
// GitHub and Jules APIs.
func (x *CLI) newUseCase() (interfaces.UseCase, error) {
	if x.useCase != nil {
		return x.useCase, nil
	}

	gh, err := github.New()
	if err != nil {
		return nil, err
	}

	clients := infra.New(
		infra.WithSecretStore(secret.NewKeyring()),
		infra.WithGitHub(gh),
		infra.WithAgent(jules.New()),
	)
	return usecase.New(clients), nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write result")
	}
	return nil
}
