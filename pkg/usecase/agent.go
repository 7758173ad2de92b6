package usecase

import (
	"context"

	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) DispatchAgent(ctx context.Context, input *model.StartSessionInput) (*model.AgentSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := x.resolveToken(ctx, types.AccountJules)
	if err != nil {
		return nil, err
	}

	if x.clients.Agent() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "agent client is not configured")
	}

	session, err := x.clients.Agent().StartSession(ctx, input, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to dispatch agent", goerr.V("task_id", input.TaskID))
	}

	return session, nil
}
