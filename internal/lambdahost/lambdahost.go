// Package lambdahost exposes a single function to the AWS Lambda runtime.
package lambdahost

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/eugenenazirov/topic-functions/internal/function"
)

// ErrUnknownFunction is returned when the requested function is not registered.
var ErrUnknownFunction = errors.New("unknown function")

// Functions holds the initialized functions that can be hosted.
type Functions struct {
	Echo        function.Invoker[function.Response]
	Acknowledge function.Invoker[function.Acknowledgement]
}

// Handler returns a JSON-in/JSON-out lambda.Handler for the named function.
func Handler(name string, fns Functions, logger *zap.Logger) (lambda.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch name {
	case function.EchoName:
		if fns.Echo == nil {
			return nil, fmt.Errorf("%w: %s is not initialized", ErrUnknownFunction, name)
		}
		return lambda.NewHandler(instrument(name, fns.Echo, logger)), nil
	case function.AcknowledgeName:
		if fns.Acknowledge == nil {
			return nil, fmt.Errorf("%w: %s is not initialized", ErrUnknownFunction, name)
		}
		return lambda.NewHandler(instrument(name, fns.Acknowledge, logger)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
}

// Start runs the named function under the Lambda runtime. It only returns
// when the handler cannot be built; the runtime owns the process otherwise.
func Start(ctx context.Context, name string, fns Functions, logger *zap.Logger) error {
	h, err := Handler(name, fns, logger)
	if err != nil {
		return err
	}
	lambda.StartWithOptions(h, lambda.WithContext(ctx))
	return nil
}

func instrument[T any](name string, inv function.Invoker[T], logger *zap.Logger) func(context.Context, function.Request) (T, error) {
	return func(ctx context.Context, req function.Request) (T, error) {
		fields := []zap.Field{zap.String("function", name)}
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			fields = append(fields, zap.String("aws_request_id", lc.AwsRequestID))
		}
		logger.Debug("invocation received", fields...)

		resp, err := inv.Invoke(ctx, req)
		if err != nil {
			logger.Error("invocation failed", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}
