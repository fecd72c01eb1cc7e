package lambdahost

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eugenenazirov/topic-functions/internal/function"
	"github.com/eugenenazirov/topic-functions/internal/parameters"
)

func newFunctions(t *testing.T, logger *zap.Logger) Functions {
	t.Helper()

	source := parameters.NewStore(map[string]string{function.TopicDisplayNameKey: "Orders"})
	echo, err := function.NewEcho(source)
	if err != nil {
		t.Fatalf("NewEcho returned error: %v", err)
	}
	ack, err := function.NewAcknowledger(source, logger)
	if err != nil {
		t.Fatalf("NewAcknowledger returned error: %v", err)
	}
	return Functions{Echo: echo, Acknowledge: ack}
}

func TestEchoHandlerSerializesResponse(t *testing.T) {
	h, err := Handler(function.EchoName, newFunctions(t, zaptest.NewLogger(t)), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	out, err := h.Invoke(context.Background(), []byte(`{}`))
	if err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if strings.TrimSpace(string(out)) != `{"DisplayName":"Orders"}` {
		t.Fatalf("unexpected payload %s", out)
	}
}

func TestAcknowledgeHandlerLogsAndReturnsEmptyObject(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h, err := Handler(function.AcknowledgeName, newFunctions(t, zap.New(core)), nil)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
	out, err := h.Invoke(ctx, []byte(`{}`))
	if err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if strings.TrimSpace(string(out)) != `{}` {
		t.Fatalf("expected empty object, got %s", out)
	}
	if got := logs.FilterMessage("TopicDisplayName: Orders").Len(); got != 1 {
		t.Fatalf("expected one log entry, got %d", got)
	}
}

func TestHandlerRejectsMalformedPayload(t *testing.T) {
	h, err := Handler(function.EchoName, newFunctions(t, nil), nil)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if _, err := h.Invoke(context.Background(), []byte(`{not json`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestHandlerUnknownFunction(t *testing.T) {
	if _, err := Handler("resize", newFunctions(t, nil), nil); !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
	if _, err := Handler(function.EchoName, Functions{}, nil); !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction for uninitialized function, got %v", err)
	}
	if err := Start(context.Background(), "resize", Functions{}, nil); !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("expected Start to fail before handing over to the runtime, got %v", err)
	}
}
