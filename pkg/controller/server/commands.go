package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/errutil"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const maxRequestBody = 1 << 20

type searchReposRequest struct {
	Query string `json:"query"`
}

type getRepoDetailsRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// dispatchAgentRequest accepts the task ID in camelCase, as the desktop invoke bridge sends
// it, and in snake_case.
type dispatchAgentRequest struct {
	TaskID      string `json:"taskId"`
	TaskIDSnake string `json:"task_id"`
	Prompt      string `json:"prompt"`
}

type saveAPIKeysRequest struct {
	GitHub types.Secret `json:"github"`
	Jules  types.Secret `json:"jules"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// command adapts a typed command function to an HTTP handler: the body is decoded into Req,
// the result is encoded as JSON, and errors are converted to their display string here and
// nowhere else.
func command[Req any, Resp any](fn func(ctx context.Context, req *Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req Req
		if err := decodeRequest(w, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		resp, err := fn(ctx, &req)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// decodeRequest reads the JSON arguments of a command. An empty body means no arguments.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := decoder.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return goerr.Wrap(types.ErrInvalidArgument, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		safeWrite(w, http.StatusInternalServerError, []byte("failed to encode response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

func statusCodeOf(kind types.ErrorKind) int {
	switch kind {
	case types.ErrorKindInvalidArgument:
		return http.StatusBadRequest
	case types.ErrorKindCredentialMissing:
		return http.StatusPreconditionFailed
	case types.ErrorKindStoreUnavailable:
		return http.StatusServiceUnavailable
	case types.ErrorKindTransport, types.ErrorKindHTTPStatus, types.ErrorKindDecode:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := types.KindOf(err)
	code := statusCodeOf(kind)

	if code >= http.StatusInternalServerError {
		errutil.HandleError(ctx, "command failed", err)
	} else {
		logging.From(ctx).Warn("command rejected",
			slog.Any("error", err),
			slog.String("error.kind", kind.String()),
		)
	}

	writeJSON(w, code, &errorResponse{
		Error: types.Message(err),
		Kind:  kind.String(),
	})
}

func handleSearchRepos(uc interfaces.UseCase) http.HandlerFunc {
	return command(func(ctx context.Context, req *searchReposRequest) ([]*model.Repository, error) {
		return uc.SearchRepos(ctx, req.Query)
	})
}

func handleGetRepoDetails(uc interfaces.UseCase) http.HandlerFunc {
	return command(func(ctx context.Context, req *getRepoDetailsRequest) (*model.RepositoryDetails, error) {
		return uc.GetRepoDetails(ctx, &model.RepoDetailsInput{
			Owner: req.Owner,
			Repo:  req.Repo,
		})
	})
}

func handleDispatchAgent(uc interfaces.UseCase) http.HandlerFunc {
	return command(func(ctx context.Context, req *dispatchAgentRequest) (*model.AgentSession, error) {
		taskID := req.TaskID
		if taskID == "" {
			taskID = req.TaskIDSnake
		}
		return uc.DispatchAgent(ctx, &model.StartSessionInput{
			TaskID: taskID,
			Prompt: req.Prompt,
		})
	})
}

func handleSaveAPIKeys(uc interfaces.UseCase) http.HandlerFunc {
	return command(func(ctx context.Context, req *saveAPIKeysRequest) (any, error) {
		if err := uc.SaveAPIKeys(ctx, req.GitHub, req.Jules); err != nil {
			return nil, err
		}
		return nil, nil
	})
}

// handleGetAPIKeysStatus never fails; a store error is reported as false.
func handleGetAPIKeysStatus(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, uc.GetAPIKeysStatus(r.Context()))
	}
}
