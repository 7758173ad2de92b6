package testutil

import (
	"os"
	"testing"

	"github.com/focus-hub/focus-core/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// SecretOrSkip reads an API token for live integration tests from the environment.
func SecretOrSkip(t *testing.T, key string) types.Secret {
	t.Helper()
	return types.Secret(GetEnvOrSkip(t, key))
}
