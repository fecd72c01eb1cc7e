package function

import (
	"fmt"

	"github.com/eugenenazirov/topic-functions/internal/parameters"
)

// readDisplayName resolves TopicDisplayName once; the value is immutable afterwards.
func readDisplayName(reader parameters.Reader) (string, error) {
	if reader == nil {
		return "", fmt.Errorf("initialize function: %w", ErrNilReader)
	}
	value, err := reader.ReadText(TopicDisplayNameKey)
	if err != nil {
		return "", fmt.Errorf("initialize function: %w", err)
	}
	return value, nil
}
