package function

import (
	"context"

	"github.com/eugenenazirov/topic-functions/internal/parameters"
)

// Echo returns the topic display name resolved at initialization.
type Echo struct {
	displayName string
}

// NewEcho reads TopicDisplayName from reader. No Echo is returned when the
// parameter cannot be resolved.
func NewEcho(reader parameters.Reader) (*Echo, error) {
	displayName, err := readDisplayName(reader)
	if err != nil {
		return nil, err
	}
	return &Echo{displayName: displayName}, nil
}

// Invoke returns the stored display name. It has no side effects.
func (e *Echo) Invoke(_ context.Context, _ Request) (Response, error) {
	return Response{DisplayName: e.displayName}, nil
}

// DisplayName returns the value resolved at initialization.
func (e *Echo) DisplayName() string {
	return e.displayName
}
