package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/infra/github"
	"github.com/focus-hub/focus-core/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

type route struct {
	status int
	body   string
}

type fakeGitHub struct {
	t      *testing.T
	routes map[string]route

	mu    sync.Mutex
	paths []string
}

func (x *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	x.mu.Lock()
	x.paths = append(x.paths, r.URL.Path)
	x.mu.Unlock()

	gt.V(x.t, r.Method).Equal(http.MethodGet)
	gt.V(x.t, r.Header.Get("User-Agent")).Equal("focus-hub")
	gt.V(x.t, r.Header.Get("Authorization")).Equal("Bearer test-token")

	rt, ok := x.routes[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rt.status)
	_, _ = w.Write([]byte(rt.body))
}

func (x *fakeGitHub) Paths() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]string{}, x.paths...)
}

func newTestClient(t *testing.T, routes map[string]route) (*github.Client, *fakeGitHub) {
	fake := &fakeGitHub{t: t, routes: routes}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := gt.R1(github.New(github.WithBaseURL(srv.URL))).NoError(t)
	return client, fake
}

func TestNew(t *testing.T) {
	t.Run("default base URL", func(t *testing.T) {
		_, err := github.New()
		gt.NoError(t, err)
	})

	t.Run("relative base URL is rejected", func(t *testing.T) {
		client, err := github.New(github.WithBaseURL("api.github.com"))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})
}

func TestSearchRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("search returns items", func(t *testing.T) {
		var query string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/search/repositories")
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")
			gt.V(t, r.Header.Get("User-Agent")).Equal("focus-hub")
			query = r.URL.Query().Get("q")
			gt.V(t, len(r.URL.Query())).Equal(1)

			_, _ = w.Write([]byte(`{"total_count":2,"items":[
				{"id":12345,"name":"test-repo","private":false,"description":"A test repo"},
				{"id":67890,"name":"secret-repo","private":true,"description":null}
			]}`))
		}))
		defer srv.Close()

		client := gt.R1(github.New(github.WithBaseURL(srv.URL))).NoError(t)
		repos := gt.R1(client.SearchRepositories(ctx, "focus hub", "test-token")).NoError(t)

		gt.V(t, query).Equal("focus hub")
		gt.V(t, len(repos)).Equal(2)
		gt.V(t, repos[0].ID).Equal(12345)
		gt.V(t, repos[0].Name).Equal("test-repo")
		gt.False(t, repos[0].Private)
		gt.V(t, *repos[0].Description).Equal("A test repo")
		gt.True(t, repos[1].Private)
		gt.V(t, repos[1].Description).Equal(nil)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/search/repositories": {status: http.StatusOK, body: `{"total_count":0,"items":[]}`},
		})
		repos := gt.R1(client.SearchRepositories(ctx, "nothing", "test-token")).NoError(t)
		gt.V(t, len(repos)).Equal(0)
	})

	t.Run("body without items is a decode error", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/search/repositories": {status: http.StatusOK, body: `{}`},
		})
		repos, err := client.SearchRepositories(ctx, "q", "test-token")
		gt.Error(t, err)
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindDecode)
		gt.V(t, len(repos)).Equal(0)
	})

	t.Run("non-2xx is an HTTP error with status", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/search/repositories": {status: http.StatusUnauthorized, body: `{"message":"Bad credentials"}`},
		})
		_, err := client.SearchRepositories(ctx, "q", "test-token")
		gt.Error(t, err)
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindHTTPStatus)

		var httpErr *types.HTTPStatusError
		gt.True(t, errors.As(err, &httpErr))
		gt.V(t, httpErr.StatusCode).Equal(http.StatusUnauthorized)
		gt.V(t, httpErr.API).Equal("GitHub")
	})

	t.Run("malformed JSON is a decode error", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/search/repositories": {status: http.StatusOK, body: `{"items":[{"id":"not-a-number"`},
		})
		_, err := client.SearchRepositories(ctx, "q", "test-token")
		gt.Error(t, err)
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindDecode)
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client := gt.R1(github.New(github.WithBaseURL(srv.URL))).NoError(t)
		_, err := client.SearchRepositories(ctx, "q", "test-token")
		gt.Error(t, err)
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindTransport)

		var urlErr *url.Error
		gt.True(t, errors.As(err, &urlErr))
	})
}

func TestTokenIsNotSentAcrossHosts(t *testing.T) {
	ctx := context.Background()

	var foreignAuth []string
	var mu sync.Mutex
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		foreignAuth = append(foreignAuth, r.Header.Get("Authorization"))
		mu.Unlock()
		_, _ = w.Write([]byte(`{"total_count":0,"items":[]}`))
	}))
	defer foreign.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/repositories":
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer ghp_secret")
			http.Redirect(w, r, foreign.URL+"/collect", http.StatusFound)
		case "/repos/octocat/hello/issues":
			http.Redirect(w, r, "/moved/issues", http.StatusMovedPermanently)
		case "/moved/issues":
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer ghp_secret")
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer api.Close()

	client := gt.R1(github.New(github.WithBaseURL(api.URL))).NoError(t)

	t.Run("redirect to another host drops the token", func(t *testing.T) {
		repos := gt.R1(client.SearchRepositories(ctx, "q", "ghp_secret")).NoError(t)
		gt.V(t, len(repos)).Equal(0)

		mu.Lock()
		defer mu.Unlock()
		gt.V(t, foreignAuth).Equal([]string{""})
	})

	t.Run("redirect on the API host keeps the token", func(t *testing.T) {
		input := &model.RepoDetailsInput{Owner: "octocat", Repo: "hello"}
		details := gt.R1(client.GetRepositoryDetails(ctx, input, "ghp_secret")).NoError(t)
		gt.V(t, len(details.Issues)).Equal(0)
	})
}

func TestGetRepositoryDetails(t *testing.T) {
	ctx := context.Background()
	input := &model.RepoDetailsInput{Owner: "octocat", Repo: "hello"}

	issuesBody := `[{"id":1,"title":"Bug","state":"open","body":"crash on start"},{"id":2,"title":"Docs","state":"closed","body":null}]`
	pullsBody := `[{"id":10,"title":"Fix crash","state":"open","user":{"login":"octocat"}}]`
	readmeBody := `{"name":"README.md","path":"README.md","encoding":"base64","content":"IyBoZWxsbw=="}`

	t.Run("all endpoints succeed", func(t *testing.T) {
		client, fake := newTestClient(t, map[string]route{
			"/repos/octocat/hello/issues": {status: http.StatusOK, body: issuesBody},
			"/repos/octocat/hello/pulls":  {status: http.StatusOK, body: pullsBody},
			"/repos/octocat/hello/readme": {status: http.StatusOK, body: readmeBody},
		})

		details := gt.R1(client.GetRepositoryDetails(ctx, input, "test-token")).NoError(t)

		gt.V(t, len(details.Issues)).Equal(2)
		gt.V(t, details.Issues[0].Title).Equal("Bug")
		gt.V(t, details.Issues[0].State).Equal("open")
		gt.V(t, *details.Issues[0].Body).Equal("crash on start")
		gt.V(t, details.Issues[1].Body).Equal(nil)

		gt.V(t, len(details.PullRequests)).Equal(1)
		gt.V(t, details.PullRequests[0].ID).Equal(10)
		gt.V(t, details.PullRequests[0].Author.Login).Equal("octocat")

		gt.V(t, len(details.Files)).Equal(1)
		gt.V(t, details.Files["README.md"]).Equal("Fetched from GitHub")

		gt.V(t, fake.Paths()).Equal([]string{
			"/repos/octocat/hello/issues",
			"/repos/octocat/hello/pulls",
			"/repos/octocat/hello/readme",
		})
	})

	t.Run("issues failure degrades to empty list", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/repos/octocat/hello/issues": {status: http.StatusInternalServerError, body: `{"message":"oops"}`},
			"/repos/octocat/hello/pulls":  {status: http.StatusOK, body: pullsBody},
			"/repos/octocat/hello/readme": {status: http.StatusOK, body: readmeBody},
		})

		details := gt.R1(client.GetRepositoryDetails(ctx, input, "test-token")).NoError(t)
		gt.V(t, len(details.Issues)).Equal(0)
		gt.V(t, details.Issues).NotEqual(nil)
		gt.V(t, len(details.PullRequests)).Equal(1)
	})

	t.Run("pull request failure degrades to empty list", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/repos/octocat/hello/issues": {status: http.StatusOK, body: issuesBody},
			"/repos/octocat/hello/pulls":  {status: http.StatusForbidden, body: `{"message":"forbidden"}`},
			"/repos/octocat/hello/readme": {status: http.StatusOK, body: readmeBody},
		})

		details := gt.R1(client.GetRepositoryDetails(ctx, input, "test-token")).NoError(t)
		gt.V(t, len(details.Issues)).Equal(2)
		gt.V(t, len(details.PullRequests)).Equal(0)
	})

	t.Run("missing README leaves files empty", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/repos/octocat/hello/issues": {status: http.StatusOK, body: `[]`},
			"/repos/octocat/hello/pulls":  {status: http.StatusOK, body: `[]`},
		})

		details := gt.R1(client.GetRepositoryDetails(ctx, input, "test-token")).NoError(t)
		gt.V(t, len(details.Files)).Equal(0)
	})

	t.Run("undecodable README leaves files empty", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/repos/octocat/hello/issues": {status: http.StatusOK, body: `[]`},
			"/repos/octocat/hello/pulls":  {status: http.StatusOK, body: `[]`},
			"/repos/octocat/hello/readme": {status: http.StatusOK, body: `not json`},
		})

		details := gt.R1(client.GetRepositoryDetails(ctx, input, "test-token")).NoError(t)
		gt.V(t, len(details.Files)).Equal(0)
	})

	t.Run("malformed issues body is a decode error", func(t *testing.T) {
		client, _ := newTestClient(t, map[string]route{
			"/repos/octocat/hello/issues": {status: http.StatusOK, body: `[{"id":`},
		})

		_, err := client.GetRepositoryDetails(ctx, input, "test-token")
		gt.Error(t, err)
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindDecode)
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client := gt.R1(github.New(github.WithBaseURL(srv.URL))).NoError(t)
		_, err := client.GetRepositoryDetails(ctx, input, "test-token")
		gt.Error(t, err)
		gt.V(t, types.KindOf(err)).Equal(types.ErrorKindTransport)
	})
}

func TestSearchRepositories_Integration(t *testing.T) {
	token := testutil.SecretOrSkip(t, "TEST_GITHUB_TOKEN")

	client := gt.R1(github.New()).NoError(t)
	repos := gt.R1(client.SearchRepositories(context.Background(), "repo:golang/go", token)).NoError(t)
	gt.A(t, repos).Longer(0)
}
