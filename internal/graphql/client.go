package graphql

import (
	"context"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Client executes GraphQL operations, returning the data member of the response
type Client interface {
	Execute(ctx context.Context, op Operation, variables map[string]any) (any, error)
}

// Error is a GraphQL error as reported in the errors member of a response
type Error struct {
	Message string `json:"message"`
}

// Errors is returned when the response holds at least one GraphQL error
type Errors []Error

func (e Errors) Error() string {
	messages := make([]string, len(e))
	for i := range e {
		messages[i] = e[i].Message
	}
	return strings.Join(messages, "\n")
}

// StatusError is returned when the server answers with a non 2xx status code and no GraphQL errors
type StatusError struct {
	StatusCode int
}

func (e StatusError) Error() string {
	return "Response not successful: Received status code " + strconv.Itoa(e.StatusCode)
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   any    `json:"data"`
	Errors Errors `json:"errors"`
}

// HTTPClient sends operations as JSON POST requests to a single endpoint
type HTTPClient struct {
	endpoint string
	timeout  time.Duration
	http     *fasthttp.Client
}

// DefaultTimeout bounds requests of clients created without a positive timeout
const DefaultTimeout = 10 * time.Second

// NewHTTPClient returns a client for endpoint. Requests are bound by the earliest of
// their context deadline and timeout, which falls back to DefaultTimeout if not positive.
func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		endpoint: endpoint,
		timeout:  timeout,
		http: &fasthttp.Client{
			Name:                "booktable",
			MaxIdleConnDuration: time.Minute,
		},
	}
}

// Execute implements Client
func (c *HTTPClient) Execute(ctx context.Context, op Operation, variables map[string]any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(request{Query: op.Query, OperationName: op.Name, Variables: variables})
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s request", op.Name)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	req.SetBody(body)

	if err = c.do(ctx, req, resp); err != nil {
		return nil, errors.Wrapf(err, "executing %s", op.Name)
	}

	var res response
	decodeErr := json.Unmarshal(resp.Body(), &res)
	statusCode := resp.StatusCode()

	if len(res.Errors) > 0 {
		return nil, res.Errors
	}
	if statusCode < fasthttp.StatusOK || statusCode >= fasthttp.StatusMultipleChoices {
		return nil, StatusError{StatusCode: statusCode}
	}
	if decodeErr != nil {
		return nil, errors.Wrapf(decodeErr, "decoding %s response", op.Name)
	}
	return res.Data, nil
}

// do bounds the request by the earliest of the context deadline and the client timeout.
// fasthttp has no context support, so cancellation without a deadline is not propagated.
func (c *HTTPClient) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	return c.http.DoDeadline(req, resp, deadline)
}
