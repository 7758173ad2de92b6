package model

import (
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// StartSessionInput is the request body sent to the agent API
type StartSessionInput struct {
	TaskID string `json:"task_id"`
	Prompt string `json:"prompt"`
}

func (x *StartSessionInput) Validate() error {
	if x == nil {
		return goerr.Wrap(types.ErrInvalidArgument, "session input is nil")
	}
	return nil
}

// AgentSession is the agent API's answer to a started session
type AgentSession struct {
	SessionID string   `json:"session_id"`
	Status    string   `json:"status"`
	Plan      []string `json:"plan"`
}
