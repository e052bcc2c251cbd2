/*
client implements an MCP client for the Streamable HTTP transport,
posting JSON-RPC 2.0 messages to a remote server. The commerce domain
and bearer token headers are forwarded on every call, since the server
resolves them per-request rather than per-session.
*/
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	// Packages
	client "github.com/mutablelogic/go-client"
	commerce "github.com/mutablelogic/go-commerce"
	mcp "github.com/mutablelogic/go-commerce/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is an MCP client that communicates with a remote MCP server
// over HTTP using JSON-RPC 2.0 messages.
type Client struct {
	*client.Client
	id   atomic.Int64
	info mcp.ClientInfo
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new MCP client with the given server URL, client info,
// and options.
func New(url string, info mcp.ClientInfo, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	c.info = info

	defaults := []client.ClientOpt{
		client.OptEndpoint(url),
		client.OptUserAgent(info.Name + "/" + info.Version),
	}
	httpClient, err := client.New(append(defaults, opts...)...)
	if err != nil {
		return nil, err
	}
	c.Client = httpClient

	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Initialize performs the MCP handshake and returns the server information.
func (c *Client) Initialize(ctx context.Context) (*mcp.ResponseInitialize, error) {
	var result mcp.ResponseInitialize
	if err := c.doRPC(ctx, mcp.MessageTypeInitialize, mcp.RequestInitialize{
		ProtocolVersion: mcp.ProtocolVersion,
		ClientInfo:      c.info,
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks the server is responding.
func (c *Client) Ping(ctx context.Context) error {
	return c.doRPC(ctx, mcp.MessageTypePing, nil, nil)
}

// ListTools returns the tools exposed by the server.
func (c *Client) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	var result mcp.ResponseListTools
	if err := c.doRPC(ctx, mcp.MessageTypeListTools, mcp.RequestList{}, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a named tool with the given arguments and returns the
// content blocks. The opts can carry per-call request headers, such as
// the commerce domain.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any, opts ...client.RequestOpt) (*mcp.ResponseToolCall, error) {
	var result mcp.ResponseToolCall
	if err := c.doRPC(ctx, mcp.MessageTypeCallTool, mcp.RequestToolCall{
		Name:      name,
		Arguments: args,
	}, &result, opts...); err != nil {
		return nil, err
	}
	return &result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// doRPC posts a JSON-RPC request and decodes the result into out,
// which may be nil to discard the result.
func (c *Client) doRPC(ctx context.Context, method string, params any, out any, opts ...client.RequestOpt) error {
	var rawParams json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return err
		}
		rawParams = data
	}

	payload, err := client.NewJSONRequestEx(http.MethodPost, mcp.Request{
		Version: mcp.RPCVersion,
		Method:  method,
		ID:      c.id.Add(1),
		Payload: rawParams,
	}, client.ContentTypeJson)
	if err != nil {
		return err
	}

	var resp mcp.Response
	if err := c.DoWithContext(ctx, payload, &resp, opts...); err != nil {
		return err
	}
	if resp.Err != nil {
		return resp.Err
	}
	if out == nil {
		return nil
	}

	// Re-marshal the result into the typed response
	data, err := json.Marshal(resp.Result)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return commerce.ErrParse.Withf("%v", err)
	}
	return nil
}
