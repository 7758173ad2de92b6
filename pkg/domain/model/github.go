package model

// ReadmeFileName is the key a fetched README is recorded under in RepositoryDetails.Files.
const ReadmeFileName = "README.md"

// ReadmePlaceholder is recorded instead of the README content. The content is not decoded.
const ReadmePlaceholder = "Fetched from GitHub"

// Issue mirrors the fields of a GitHub issue the UI shows. State is kept as the upstream string.
type Issue struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	State string  `json:"state"`
	Body  *string `json:"body"`
}

type PullRequest struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author User   `json:"user"`
	State  string `json:"state"`
}

type User struct {
	Login string `json:"login"`
}
