package parameters

import (
	"os"
	"strings"
)

const envPrefix = "STR_"

// EnvSource reads parameters from environment variables named STR_<KEY>,
// where KEY is the upper-cased parameter name with every character outside
// [A-Z0-9] replaced by an underscore.
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource creates a source backed by the process environment.
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// ReadText implements Reader.
func (e *EnvSource) ReadText(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	lookup := e.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(EnvName(key))
	if !ok {
		return "", notFound(key)
	}
	return value, nil
}

// EnvName returns the environment variable consulted for key.
func EnvName(key string) string {
	var b strings.Builder
	b.Grow(len(envPrefix) + len(key))
	b.WriteString(envPrefix)
	for _, r := range strings.ToUpper(key) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
