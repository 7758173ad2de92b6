package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/focus-hub/focus-core/pkg/domain/mock"
	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/infra"
	"github.com/focus-hub/focus-core/pkg/infra/github"
	"github.com/focus-hub/focus-core/pkg/infra/secret"
	"github.com/focus-hub/focus-core/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newStoreWithKeys(t *testing.T, githubKey, julesKey types.Secret) *secret.Memory {
	t.Helper()
	store := secret.NewMemory()
	ctx := context.Background()
	if githubKey != "" {
		gt.NoError(t, store.SetSecret(ctx, types.AccountGitHub, githubKey))
	}
	if julesKey != "" {
		gt.NoError(t, store.SetSecret(ctx, types.AccountJules, julesKey))
	}
	return store
}

func TestSearchRepos(t *testing.T) {
	ctx := context.Background()

	t.Run("missing GitHub token fails without calling GitHub", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		uc := usecase.New(infra.New(
			infra.WithSecretStore(secret.NewMemory()),
			infra.WithGitHub(mockGH),
		))

		repos, err := uc.SearchRepos(ctx, "focus")
		gt.Error(t, err)
		gt.V(t, repos).Equal(nil)
		gt.True(t, errors.Is(err, types.ErrCredentialMissing))
		gt.V(t, types.Message(err)).Equal("GitHub API Key not found. Please set it in Settings.")
		gt.V(t, len(mockGH.SearchRepositoriesCalls())).Equal(0)
	})

	t.Run("stored token is passed to GitHub", func(t *testing.T) {
		desc := "A test repo"
		mockGH := &mock.GitHubMock{
			SearchRepositoriesFunc: func(ctx context.Context, query string, token types.Secret) ([]*model.Repository, error) {
				gt.V(t, query).Equal("focus")
				gt.V(t, token).Equal(types.Secret("ghp_token"))
				return []*model.Repository{{ID: 12345, Name: "test-repo", Description: &desc}}, nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithSecretStore(newStoreWithKeys(t, "ghp_token", "")),
			infra.WithGitHub(mockGH),
		))

		repos := gt.R1(uc.SearchRepos(ctx, "focus")).NoError(t)
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].Name).Equal("test-repo")
		gt.V(t, len(mockGH.SearchRepositoriesCalls())).Equal(1)
	})

	t.Run("client error keeps its kind", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			SearchRepositoriesFunc: func(ctx context.Context, query string, token types.Secret) ([]*model.Repository, error) {
				return nil, goerr.Wrap(&types.HTTPStatusError{API: "GitHub", StatusCode: 422, Status: "422 Unprocessable Entity"}, "search")
			},
		}
		uc := usecase.New(infra.New(
			infra.WithSecretStore(newStoreWithKeys(t, "ghp_token", "")),
			infra.WithGitHub(mockGH),
		))

		_, err := uc.SearchRepos(ctx, "")
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindHTTPStatus)
		gt.V(t, types.Message(err)).Equal("GitHub API error: 422 Unprocessable Entity")
	})
}

func TestGetRepoDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid repository is rejected before token lookup", func(t *testing.T) {
		store := &mock.SecretStoreMock{}
		uc := usecase.New(infra.New(infra.WithSecretStore(store)))

		_, err := uc.GetRepoDetails(ctx, &model.RepoDetailsInput{Owner: "", Repo: "hello"})
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindInvalidArgument)
		gt.V(t, len(store.GetSecretCalls())).Equal(0)

		_, err = uc.GetRepoDetails(ctx, nil)
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindInvalidArgument)
	})

	t.Run("names that would rewrite the API path are rejected", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		uc := usecase.New(infra.New(
			infra.WithSecretStore(newStoreWithKeys(t, "ghp_token", "jules_token")),
			infra.WithGitHub(mockGH),
		))

		_, err := uc.GetRepoDetails(ctx, &model.RepoDetailsInput{Owner: "..", Repo: "x?y"})
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindInvalidArgument)
		gt.V(t, len(mockGH.GetRepositoryDetailsCalls())).Equal(0)
	})

	t.Run("missing GitHub token", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		uc := usecase.New(infra.New(
			infra.WithSecretStore(newStoreWithKeys(t, "", "jules_token")),
			infra.WithGitHub(mockGH),
		))

		_, err := uc.GetRepoDetails(ctx, &model.RepoDetailsInput{Owner: "octocat", Repo: "hello"})
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindCredentialMissing)
		gt.V(t, len(mockGH.GetRepositoryDetailsCalls())).Equal(0)
	})

	t.Run("issues failure degrades while pull requests are returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer ghp_token")
			switch r.URL.Path {
			case "/repos/octocat/hello/issues":
				w.WriteHeader(http.StatusGone)
				_, _ = w.Write([]byte(`{"message":"Issues are disabled for this repo"}`))
			case "/repos/octocat/hello/pulls":
				_, _ = w.Write([]byte(`[{"id":10,"title":"Fix crash","state":"open","user":{"login":"octocat"}}]`))
			case "/repos/octocat/hello/readme":
				_, _ = w.Write([]byte(`{"name":"README.md","encoding":"base64","content":"IyBoZWxsbw=="}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		ghClient := gt.R1(github.New(github.WithBaseURL(srv.URL))).NoError(t)
		uc := usecase.New(infra.New(
			infra.WithSecretStore(newStoreWithKeys(t, "ghp_token", "")),
			infra.WithGitHub(ghClient),
		))

		details := gt.R1(uc.GetRepoDetails(ctx, &model.RepoDetailsInput{Owner: "octocat", Repo: "hello"})).NoError(t)
		gt.V(t, len(details.Issues)).Equal(0)
		gt.V(t, len(details.PullRequests)).Equal(1)
		gt.V(t, details.PullRequests[0].Author.Login).Equal("octocat")
		gt.V(t, details.Files[model.ReadmeFileName]).Equal(model.ReadmePlaceholder)
	})

	t.Run("transport failure is propagated", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetRepositoryDetailsFunc: func(ctx context.Context, input *model.RepoDetailsInput, token types.Secret) (*model.RepositoryDetails, error) {
				return nil, goerr.Wrap(types.ErrTransport, "connection refused")
			},
		}
		uc := usecase.New(infra.New(
			infra.WithSecretStore(newStoreWithKeys(t, "ghp_token", "")),
			infra.WithGitHub(mockGH),
		))

		_, err := uc.GetRepoDetails(ctx, &model.RepoDetailsInput{Owner: "octocat", Repo: "hello"})
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindTransport)
	})
}
