package runtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/isometry/fitbit-webhook-app/internal/greeting"
)

// GreetingRuntime exposes the greeting function on Lambda.
type GreetingRuntime struct {
	logger      *slog.Logger
	payloadType string
}

// NewGreetingRuntime creates a GreetingRuntime. It accepts the same options as NewRuntime.
func NewGreetingRuntime(opts ...Option) *GreetingRuntime {
	r := NewRuntime(nil, opts...)
	return &GreetingRuntime{logger: r.logger, payloadType: r.payloadType}
}

// Lambda is the Lambda handler for the greeting function.
func (r *GreetingRuntime) Lambda(ctx context.Context, event json.RawMessage) (any, error) {
	logger := r.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(slog.String("requestID", lc.AwsRequestID))
	}
	return encodeResponse(r.payloadType, greeting.Handle(ctx, logger, event))
}
