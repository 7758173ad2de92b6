package infra

import (
	"github.com/focus-hub/focus-core/pkg/domain/interfaces"
)

type Clients struct {
	secretStore interfaces.SecretStore
	gitHub      interfaces.GitHub
	agent       interfaces.Agent
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) SecretStore() interfaces.SecretStore {
	return x.secretStore
}
func (x *Clients) GitHub() interfaces.GitHub {
	return x.gitHub
}
func (x *Clients) Agent() interfaces.Agent {
	return x.agent
}

func WithSecretStore(store interfaces.SecretStore) Option {
	return func(x *Clients) {
		x.secretStore = store
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.gitHub = client
	}
}

func WithAgent(client interfaces.Agent) Option {
	return func(x *Clients) {
		x.agent = client
	}
}
