// Package runtime adapts the webhook handler to the hosts it can run on: AWS Lambda and plain net/http.
package runtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/isometry/fitbit-webhook-app/internal/config"
	"github.com/isometry/fitbit-webhook-app/internal/handler"
	"github.com/isometry/fitbit-webhook-app/internal/helpers"
	"github.com/isometry/fitbit-webhook-app/internal/models"
)

// RequestIDHeader carries the invocation ID in service mode.
const RequestIDHeader = "X-Request-Id"

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithPayloadType selects the Lambda event shape. See config.PayloadType* for supported values.
func WithPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.payloadType = payloadType
	}
}

type Runtime struct {
	*handler.Handler
	logger      *slog.Logger
	payloadType string
}

// NewRuntime creates a new runtime instance
func NewRuntime(handler *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{Handler: handler}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.payloadType == "" {
		_inst.payloadType = config.PayloadTypeAPIGatewayV2
	}
	return _inst
}

// Lambda is the Lambda handler for the runtime. Verification failures are answered with a 404 response and never
// returned as invocation errors; only an unsupported payload type is.
func (r *Runtime) Lambda(ctx context.Context, payload json.RawMessage) (any, error) {
	logger := r.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(slog.String("requestID", lc.AwsRequestID))
	}
	logger.Info("received Lambda event", slog.String("payloadType", r.payloadType))

	req, err := decodeRequest(r.payloadType, payload)
	if err != nil {
		var unsupported *unsupportedPayloadTypeError
		if errors.As(err, &unsupported) {
			logger.Error("rejecting Lambda event", slog.Any("error", err))
			return nil, err
		}
		logger.Warn("failed to decode Lambda event", slog.Any("error", err))
		return encodeResponse(r.payloadType, models.Response{StatusCode: http.StatusBadRequest})
	}

	response, err := r.Handler.Process(req)
	logger.Info("handled event", slog.Int("statusCode", response.StatusCode), slog.Any("error", err))
	return encodeResponse(r.payloadType, response)
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := r.logger.With(slog.String("requestID", requestID))

	logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("method", req.Method), slog.Any("path", req.URL.Path))
	body, err := io.ReadAll(req.Body)
	if err != nil {
		logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(models.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{RequestIDHeader: requestID},
		}, resp)
		return
	}

	response, err := r.Handler.Process(models.Request{
		Method:          req.Method,
		QueryParameters: helpers.QueryParameters(req.URL.RawQuery),
		Body:            string(body),
		Headers:         helpers.NormaliseHeaders(req.Header),
	})
	logger.Debug("handled request", slog.Int("statusCode", response.StatusCode), slog.Any("error", err))

	if response.Headers == nil {
		response.Headers = make(map[string]string)
	}
	response.Headers[RequestIDHeader] = requestID
	helpers.RespondHTTP(response, resp)
}

type unsupportedPayloadTypeError struct {
	payloadType string
}

func (e *unsupportedPayloadTypeError) Error() string {
	return fmt.Sprintf("unsupported lambda payload type: %s", e.payloadType)
}

func decodeRequest(payloadType string, payload json.RawMessage) (models.Request, error) {
	switch payloadType {
	case config.PayloadTypeAPIGatewayV1:
		var ev events.APIGatewayProxyRequest
		if err := json.Unmarshal(payload, &ev); err != nil {
			return models.Request{}, err
		}
		return newRequest(ev.HTTPMethod, ev.QueryStringParameters, ev.Body, ev.IsBase64Encoded, ev.Headers), nil
	case config.PayloadTypeAPIGatewayV2:
		var ev events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &ev); err != nil {
			return models.Request{}, err
		}
		return newRequest(ev.RequestContext.HTTP.Method, ev.QueryStringParameters, ev.Body, ev.IsBase64Encoded, ev.Headers), nil
	case config.PayloadTypeLambdaURL:
		var ev events.LambdaFunctionURLRequest
		if err := json.Unmarshal(payload, &ev); err != nil {
			return models.Request{}, err
		}
		return newRequest(ev.RequestContext.HTTP.Method, ev.QueryStringParameters, ev.Body, ev.IsBase64Encoded, ev.Headers), nil
	default:
		return models.Request{}, &unsupportedPayloadTypeError{payloadType: payloadType}
	}
}

func newRequest(method string, query map[string]string, body string, base64Encoded bool, headers map[string]string) models.Request {
	if base64Encoded {
		if decoded, err := base64.StdEncoding.DecodeString(body); err == nil {
			body = string(decoded)
		}
	}
	// Lower-case incoming headers for compatibility purposes
	lch := make(map[string]string, len(headers))
	for k, v := range headers {
		lch[strings.ToLower(k)] = v
	}
	return models.Request{
		Method:          method,
		QueryParameters: query,
		Body:            body,
		Headers:         lch,
	}
}

func encodeResponse(payloadType string, response models.Response) (any, error) {
	switch payloadType {
	case config.PayloadTypeAPIGatewayV1:
		return events.APIGatewayProxyResponse{
			Body:       response.Body,
			Headers:    response.Headers,
			StatusCode: response.StatusCode,
		}, nil
	case config.PayloadTypeAPIGatewayV2:
		return events.APIGatewayV2HTTPResponse{
			Body:       response.Body,
			Headers:    response.Headers,
			StatusCode: response.StatusCode,
		}, nil
	case config.PayloadTypeLambdaURL:
		return events.LambdaFunctionURLResponse{
			Body:       response.Body,
			Headers:    response.Headers,
			StatusCode: response.StatusCode,
		}, nil
	default:
		return nil, &unsupportedPayloadTypeError{payloadType: payloadType}
	}
}
