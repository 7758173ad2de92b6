package types

import "log/slog"

// SecretServiceName is the service identifier every credential is stored under in the OS
// secret store.
const SecretServiceName = "focus-hub-app"

type (
	// Account names one credential entry under SecretServiceName.
	Account string

	// Secret is an API token. It never formats as its real value.
	Secret string
)

const (
	AccountGitHub Account = "github_token"
	AccountJules  Account = "jules_token"
)

// Accounts returns all credential accounts the application manages, in write order.
func Accounts() []Account {
	return []Account{AccountGitHub, AccountJules}
}

// Label is the human readable name of the API the account authenticates against.
func (x Account) Label() string {
	switch x {
	case AccountGitHub:
		return "GitHub"
	case AccountJules:
		return "Jules"
	default:
		return string(x)
	}
}

func (x Secret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x Secret) String() string {
	return "***********"
}

// Bearer returns the value of an Authorization header carrying the secret.
func (x Secret) Bearer() string {
	return "Bearer " + string(x)
}
