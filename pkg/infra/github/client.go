package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
	"github.com/focus-hub/focus-core/pkg/domain/model"
	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultBaseURL is the GitHub REST API root. It must end with a slash.
	DefaultBaseURL = "https://api.github.com/"

	// UserAgent is sent with every request; GitHub rejects requests without one.
	UserAgent = "focus-hub"

	apiName = "GitHub"
)

type Client struct {
	baseURL   string
	transport http.RoundTripper
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL replaces the API root, e.g. with an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		baseURL:   DefaultBaseURL,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	u, err := url.Parse(client.baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", client.baseURL))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub base URL must be absolute", goerr.V("url", client.baseURL))
	}

	return client, nil
}

// tokenTransport sets the headers every GitHub request carries. The token is only sent to
// the API host; a redirect to any other host goes out without it.
type tokenTransport struct {
	base  http.RoundTripper
	host  string
	token types.Secret
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", UserAgent)
	if r.URL.Host == x.host {
		r.Header.Set("Authorization", x.token.Bearer())
	} else {
		r.Header.Del("Authorization")
	}
	return x.base.RoundTrip(r)
}

// buildGithubClient creates a request-scoped client. Nothing is shared between calls.
func (x *Client) buildGithubClient(token types.Secret) (*github.Client, error) {
	baseURL := x.baseURL
	if baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", baseURL))
	}

	httpClient := &http.Client{
		Transport: &tokenTransport{base: x.transport, host: u.Host, token: token},
	}
	client := github.NewClient(httpClient)
	client.UserAgent = UserAgent
	client.BaseURL = u

	return client, nil
}

// checkResponse classifies an error returned by go-github. A nil response means the request
// never completed; a non-2xx response is an HTTP error; anything else failed while decoding.
func checkResponse(resp *github.Response, err error, msg string, values ...goerr.Option) error {
	if err == nil {
		return nil
	}

	if resp == nil || resp.Response == nil {
		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) && rateErr.Response != nil {
			return goerr.Wrap(&types.HTTPStatusError{
				API:        apiName,
				StatusCode: rateErr.Response.StatusCode,
				Status:     rateErr.Response.Status,
			}, msg, values...)
		}
		return goerr.Wrap(types.Classify(types.ErrTransport, err), msg, values...)
	}

	if !isSuccess(resp.StatusCode) {
		return goerr.Wrap(&types.HTTPStatusError{
			API:        apiName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}, msg, append(values, goerr.V("cause", err.Error()))...)
	}

	return goerr.Wrap(types.Classify(types.ErrDecode, err), msg, values...)
}

func isSuccess(code int) bool {
	return 200 <= code && code < 300
}

func (x *Client) SearchRepositories(ctx context.Context, query string, token types.Secret) ([]*model.Repository, error) {
	logging.From(ctx).Debug("Sending search repositories request",
		slog.String("query", query),
		slog.Any("token", token),
	)

	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}

	// https://docs.github.com/en/rest/search/search#search-repositories
	result, resp, err := client.Search.Repositories(ctx, query, &github.SearchOptions{})
	if err := checkResponse(resp, err, "failed to search repositories", goerr.V("query", query)); err != nil {
		return nil, err
	}
	if result == nil || result.Repositories == nil {
		return nil, goerr.Wrap(types.ErrDecode, "search response has no items", goerr.V("query", query))
	}

	repos := make([]*model.Repository, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		repos = append(repos, &model.Repository{
			ID:          repo.GetID(),
			Name:        repo.GetName(),
			Private:     repo.GetPrivate(),
			Description: repo.Description,
		})
	}

	logging.From(ctx).Debug("Searched repositories",
		slog.String("query", query),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}

// GetRepositoryDetails fetches issues, pull requests and the README one after another.
// A non-2xx answer for issues or pull requests leaves that list empty. Only a request that
// could not be sent fails the whole call.
func (x *Client) GetRepositoryDetails(ctx context.Context, input *model.RepoDetailsInput, token types.Secret) (*model.RepositoryDetails, error) {
	logger := logging.From(ctx).With(
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
	)

	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}

	repoValues := []goerr.Option{
		goerr.V("owner", input.Owner),
		goerr.V("repo", input.Repo),
	}

	details := model.NewRepositoryDetails()

	// https://docs.github.com/en/rest/issues/issues#list-repository-issues
	issues, resp, err := client.Issues.ListByRepo(ctx, input.Owner, input.Repo, nil)
	if err := tolerateStatus(checkResponse(resp, err, "failed to list issues", repoValues...)); err != nil {
		return nil, err
	}
	for _, issue := range issues {
		details.Issues = append(details.Issues, &model.Issue{
			ID:    issue.GetID(),
			Title: issue.GetTitle(),
			State: issue.GetState(),
			Body:  issue.Body,
		})
	}
	if resp != nil && !isSuccess(resp.StatusCode) {
		logger.Warn("Issues are not available, using empty list", slog.Int("status", resp.StatusCode))
	}

	// https://docs.github.com/en/rest/pulls/pulls#list-pull-requests
	pulls, resp, err := client.PullRequests.List(ctx, input.Owner, input.Repo, nil)
	if err := tolerateStatus(checkResponse(resp, err, "failed to list pull requests", repoValues...)); err != nil {
		return nil, err
	}
	for _, pr := range pulls {
		details.PullRequests = append(details.PullRequests, &model.PullRequest{
			ID:     pr.GetID(),
			Title:  pr.GetTitle(),
			Author: model.User{Login: pr.GetUser().GetLogin()},
			State:  pr.GetState(),
		})
	}
	if resp != nil && !isSuccess(resp.StatusCode) {
		logger.Warn("Pull requests are not available, using empty list", slog.Int("status", resp.StatusCode))
	}

	// https://docs.github.com/en/rest/repos/contents#get-a-repository-readme
	// The content is not decoded; a placeholder is recorded when the README exists.
	_, resp, err = client.Repositories.GetReadme(ctx, input.Owner, input.Repo, nil)
	switch readmeErr := checkResponse(resp, err, "failed to get readme", repoValues...); {
	case readmeErr == nil:
		details.Files[model.ReadmeFileName] = model.ReadmePlaceholder
	case errors.Is(readmeErr, types.ErrTransport):
		return nil, readmeErr
	default:
		logger.Debug("README is not available", slog.Any("error", readmeErr))
	}

	logger.Debug("Fetched repository details",
		slog.Int("issues", len(details.Issues)),
		slog.Int("pull_requests", len(details.PullRequests)),
		slog.Int("files", len(details.Files)),
	)

	return details, nil
}

// tolerateStatus drops HTTP status errors and keeps transport and decode errors.
func tolerateStatus(err error) error {
	if errors.Is(err, types.ErrHTTPStatus) {
		return nil
	}
	return err
}
