package function

import "context"

// TopicDisplayNameKey names the parameter both functions read at initialization.
const TopicDisplayNameKey = "TopicDisplayName"

const (
	// EchoName identifies the echo function.
	EchoName = "echo"
	// AcknowledgeName identifies the log-and-acknowledge function.
	AcknowledgeName = "acknowledge"
)

// Request is the invocation payload. It carries no attributes.
type Request struct{}

// Response is returned by the echo function.
type Response struct {
	DisplayName string `json:"DisplayName"`
}

// Acknowledgement is the empty response returned by the acknowledge function.
type Acknowledgement struct{}

// Invoker is satisfied by functions returning a response of type T.
type Invoker[T any] interface {
	Invoke(ctx context.Context, req Request) (T, error)
}

// Names lists the functions this module provides.
func Names() []string {
	return []string{EchoName, AcknowledgeName}
}
