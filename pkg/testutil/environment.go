package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EnvPrefix is the prefix of ticketlink configuration variables
const EnvPrefix = "TICKETLINK_"

// TestEnvironment points the XDG directories at fresh temp dirs and removes
// every TICKETLINK_* variable for the duration of a test.
type TestEnvironment struct {
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment. Output colors are
// disabled through NO_COLOR.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	ClearEnv(t, EnvPrefix)

	return env
}

// UserConfigDir is where ticketlink looks for its user config file
func (e *TestEnvironment) UserConfigDir() string {
	return filepath.Join(e.ConfigHome, "ticketlink")
}

// WriteUserConfig writes name into the user config dir
func (e *TestEnvironment) WriteUserConfig(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.UserConfigDir(), name, content)
}

// WriteConfig writes a standalone config file, for use with --config
func (e *TestEnvironment) WriteConfig(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.t.TempDir(), name, content)
}

// Setenv sets a variable for the rest of the test
func (e *TestEnvironment) Setenv(key, value string) {
	e.t.Helper()
	e.t.Setenv(key, value)
}

// ClearEnv unsets every variable starting with prefix; t restores them
func ClearEnv(t *testing.T, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		// Setenv registers the restore, Unsetenv removes the variable
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}
}
