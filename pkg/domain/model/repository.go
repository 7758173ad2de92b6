package model

import (
	"regexp"

	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Repository represents one GitHub repository search result
type Repository struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Private     bool    `json:"private"`
	Description *string `json:"description"`
}

// RepositoryDetails is the aggregated detail view of a repository
type RepositoryDetails struct {
	Issues       []*Issue          `json:"issues"`
	PullRequests []*PullRequest    `json:"prs"`
	Files        map[string]string `json:"files"`
}

// NewRepositoryDetails returns details with empty, non-nil collections.
func NewRepositoryDetails() *RepositoryDetails {
	return &RepositoryDetails{
		Issues:       []*Issue{},
		PullRequests: []*PullRequest{},
		Files:        map[string]string{},
	}
}

type RepoDetailsInput struct {
	Owner string
	Repo  string
}

// GitHub owner and repository names are limited to these characters. Anything else would be
// interpreted as URL syntax when the name is placed into an API path.
var ptnValidRepoName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func validRepoName(name string) bool {
	return name != "." && name != ".." && ptnValidRepoName.MatchString(name)
}

func (x *RepoDetailsInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidArgument, "owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrInvalidArgument, "repo is empty")
	}
	if !validRepoName(x.Owner) {
		return goerr.Wrap(types.ErrInvalidArgument, "invalid owner name", goerr.V("owner", x.Owner))
	}
	if !validRepoName(x.Repo) {
		return goerr.Wrap(types.ErrInvalidArgument, "invalid repo name", goerr.V("repo", x.Repo))
	}
	return nil
}
