package function

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/topic-functions/internal/parameters"
)

// Acknowledger logs the topic display name on every invocation.
type Acknowledger struct {
	displayName string
	logger      *zap.Logger
}

// NewAcknowledger reads TopicDisplayName from reader. A nil logger discards output.
func NewAcknowledger(reader parameters.Reader, logger *zap.Logger) (*Acknowledger, error) {
	displayName, err := readDisplayName(reader)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Acknowledger{
		displayName: displayName,
		logger:      logger,
	}, nil
}

// Invoke writes one informational log entry and returns an empty acknowledgement.
func (a *Acknowledger) Invoke(_ context.Context, _ Request) (Acknowledgement, error) {
	a.logger.Info(fmt.Sprintf("%s: %s", TopicDisplayNameKey, a.displayName))
	return Acknowledgement{}, nil
}

// DisplayName returns the value resolved at initialization.
func (a *Acknowledger) DisplayName() string {
	return a.displayName
}
