package jules

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/focus-hub/focus-core/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultEndpoint = "https://api.jules.ai/v1/sessions"

	apiName = "Jules"

	// maxErrorBody bounds how much of an error response is kept for diagnostics.
	maxErrorBody = 4096
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	endpoint   string
	httpClient HTTPClient
}

var _ interfaces.Agent = (*Client)(nil)

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(x *Client) {
		x.endpoint = endpoint
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(options ...Option) *Client {
	client := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// StartSession dispatches a task to the agent API and returns the created session.
func (x *Client) StartSession(ctx context.Context, input *model.StartSessionInput, token types.Secret) (*model.AgentSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("Sending start session request",
		slog.String("endpoint", x.endpoint),
		slog.String("task_id", input.TaskID),
		slog.Any("token", token),
	)

	body, err := json.Marshal(input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal session request", goerr.V("task_id", input.TaskID))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to create session request",
			goerr.V("endpoint", x.endpoint),
			goerr.V("cause", err.Error()),
		)
	}
	req.Header.Set("Authorization", token.Bearer())
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.Classify(types.ErrTransport, err), "failed to send session request",
			goerr.V("endpoint", x.endpoint),
			goerr.V("task_id", input.TaskID),
		)
	}
	defer safe.CloseBody(resp.Body)

	if resp.StatusCode < 200 || 300 <= resp.StatusCode {
		errBody, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err != nil {
			logging.From(ctx).Warn("failed to read error response body",
				slog.Int("status", resp.StatusCode),
				slog.Any("error", err),
			)
		}
		return nil, goerr.Wrap(&types.HTTPStatusError{
			API:        apiName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}, "failed to start session",
			goerr.V("task_id", input.TaskID),
			goerr.V("body", string(errBody)),
		)
	}

	var session model.AgentSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, goerr.Wrap(types.Classify(types.ErrDecode, err), "failed to decode session response",
			goerr.V("task_id", input.TaskID),
		)
	}

	logging.From(ctx).Info("Agent session started",
		slog.String("task_id", input.TaskID),
		slog.String("session_id", session.SessionID),
		slog.String("status", session.Status),
	)

	return &session, nil
}
