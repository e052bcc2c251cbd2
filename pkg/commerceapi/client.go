/*
commerceapi implements a client for the commerce REST API, which is
reached at {domain}/rest/V1. The domain and bearer token are supplied
by the caller on every request, so a client is constructed per call
rather than held for the lifetime of the process.
*/
package commerceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	// Packages
	commerce "github.com/mutablelogic/go-commerce"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	endpoint string // {domain}/rest/V1
	token    string // normalized with the bearer scheme prefix
	client   *http.Client
	headers  http.Header // caller-supplied headers, merged after the computed set
	tracer   trace.Tracer
}

type Opt func(*Client) error

type request struct {
	method string
	query  url.Values
	body   any
}

type RequestOpt func(*request)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	pathPrefix      = "/rest/V1"
	bearerScheme    = "Bearer"
	contentTypeJSON = "application/json"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the given commerce instance. Both the domain
// and the token must be present or the call fails before any network I/O.
func New(domain, token string, opts ...Opt) (*Client, error) {
	var missing []string
	if domain == "" {
		missing = append(missing, HeaderDomain)
	}
	if token == "" {
		missing = append(missing, HeaderAuthorization)
	}
	if len(missing) > 0 {
		return nil, commerce.ErrMissingHeaders.With(strings.Join(missing, ", "))
	}

	c := &Client{
		endpoint: strings.TrimSuffix(domain, "/") + pathPrefix,
		token:    normalizeToken(token),
		client:   http.DefaultClient,
		headers:  make(http.Header),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Return the client
	return c, nil
}

// NewFromContext creates a client from the per-call credentials carried
// in the context. This is where missing transport headers are detected.
func NewFromContext(ctx context.Context, opts ...Opt) (*Client, error) {
	creds := CredentialsFromContext(ctx)
	return New(creds.Domain, creds.Token, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptHTTPClient sets the underlying HTTP client
func OptHTTPClient(v *http.Client) Opt {
	return func(c *Client) error {
		if v == nil {
			return commerce.ErrBadParameter.With("http client cannot be nil")
		}
		c.client = v
		return nil
	}
}

// OptHeader adds a header to every outgoing request. Caller-supplied
// headers are merged after the computed set, so they may override
// Authorization, Content-Type and Accept.
func OptHeader(key, value string) Opt {
	return func(c *Client) error {
		c.headers.Set(key, value)
		return nil
	}
}

// OptTracer sets a tracer which records a span for each outgoing request
func OptTracer(v trace.Tracer) Opt {
	return func(c *Client) error {
		c.tracer = v
		return nil
	}
}

// OptMethod sets the request method. The default is GET.
func OptMethod(method string) RequestOpt {
	return func(r *request) {
		r.method = method
	}
}

// OptQuery sets the query parameters for the request
func OptQuery(query url.Values) RequestOpt {
	return func(r *request) {
		r.query = query
	}
}

// OptBody sets the request body, which is serialized to JSON.
// The body is ignored when the method is GET.
func OptBody(body any) RequestOpt {
	return func(r *request) {
		r.body = body
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Do performs a request against a REST path suffix and returns the
// response body as raw JSON. Any failure is wrapped with an
// "API call error" prefix, preserving the message text.
func (c *Client) Do(ctx context.Context, path string, opts ...RequestOpt) (json.RawMessage, error) {
	result, err := c.do(ctx, path, opts...)
	if err != nil {
		return nil, fmt.Errorf("API call error: %w", err)
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) do(ctx context.Context, path string, opts ...RequestOpt) (json.RawMessage, error) {
	req := request{method: http.MethodGet}
	for _, opt := range opts {
		opt(&req)
	}

	// Record a span for the request if a tracer is set
	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "commerceapi."+req.method)
		defer span.End()
	}

	// The path is assumed already escaped by the caller
	target := c.endpoint + "/" + path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	// Serialize the body only for non-GET requests
	var body io.Reader
	if req.body != nil && req.method != http.MethodGet {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to marshal body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, commerce.ErrBadParameter.Withf("%v", err)
	}

	// Computed headers first, then caller-supplied headers, which may
	// override them
	httpReq.Header.Set(HeaderAuthorization, c.token)
	httpReq.Header.Set("Content-Type", contentTypeJSON)
	httpReq.Header.Set("Accept", contentTypeJSON)
	for key, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, commerce.ErrTransport.Withf("%v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, commerce.ErrTransport.Withf("%v", err)
	}

	// Non-2xx: surface the status and the raw body text
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, commerce.ErrTransport.Withf("%s: %s", resp.Status, string(data))
	}

	// The response is passed through verbatim, so only check it parses
	if !json.Valid(data) {
		return nil, commerce.ErrParse.With("response is not valid JSON")
	}

	// Return the raw JSON
	return json.RawMessage(data), nil
}

// normalizeToken adds the bearer scheme prefix unless the credential
// already carries it
func normalizeToken(token string) string {
	if strings.HasPrefix(token, bearerScheme+" ") {
		return token
	}
	return bearerScheme + " " + token
}
