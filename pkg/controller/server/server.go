package server

import (
	"net/http"

	"log/slog"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded by encoding/json or is a fixed string
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	allowOrigins []string
}

type Option func(*config)

// WithAllowOrigin permits a browser origin (e.g. the desktop webview) to call the commands.
func WithAllowOrigin(origin string) Option {
	return func(cfg *config) {
		cfg.allowOrigins = append(cfg.allowOrigins, origin)
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(allowOrigins(cfg.allowOrigins))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/commands", func(r chi.Router) {
		r.Post("/search_repos", handleSearchRepos(uc))
		r.Post("/get_repo_details", handleGetRepoDetails(uc))
		r.Post("/dispatch_agent", handleDispatchAgent(uc))
		r.Post("/save_api_keys", handleSaveAPIKeys(uc))
		r.Post("/get_api_keys_status", handleGetAPIKeysStatus(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
