package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	calc "github.com/mutablelogic/go-commerce/pkg/calc"
	commerceapi "github.com/mutablelogic/go-commerce/pkg/commerceapi"
	mcp "github.com/mutablelogic/go-commerce/pkg/mcp"
	mcpclient "github.com/mutablelogic/go-commerce/pkg/mcp/client"
	tool "github.com/mutablelogic/go-commerce/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newRemote(t *testing.T, opts ...client.ClientOpt) *mcpclient.Client {
	t.Helper()

	toolkit, err := tool.NewToolkit(append(commerceapi.NewTools(), calc.NewTools()...)...)
	if err != nil {
		t.Fatal(err)
	}
	server, err := mcp.New("test", "0.0.0", mcp.WithToolkit(toolkit))
	if err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(server.HandleFunc())

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	remote, err := mcpclient.New(ts.URL+mcp.PathMCP, mcp.ClientInfo{Name: "test", Version: "0.0.0"}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return remote
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestInitialize(t *testing.T) {
	assert := assert.New(t)
	remote := newRemote(t)

	result, err := remote.Initialize(context.Background())
	if assert.NoError(err) {
		assert.Equal("2025-06-18", result.Version)
		assert.Equal("test", result.ServerInfo.Name)
		assert.Equal("0.0.0", result.ServerInfo.Version)
	}
}

func TestPing(t *testing.T) {
	assert := assert.New(t)
	remote := newRemote(t)

	assert.NoError(remote.Ping(context.Background()))
}

func TestListTools(t *testing.T) {
	assert := assert.New(t)
	remote := newRemote(t)

	tools, err := remote.ListTools(context.Background())
	if assert.NoError(err) {
		assert.Len(tools, 8)
		names := make([]string, 0, len(tools))
		for _, tool := range tools {
			names = append(names, tool.Name)
		}
		assert.Contains(names, "get_product_by_sku")
		assert.Contains(names, "add")
	}
}

func TestCallTool(t *testing.T) {
	assert := assert.New(t)
	remote := newRemote(t)

	result, err := remote.CallTool(context.Background(), "add", map[string]any{"a": 2, "b": 3})
	if assert.NoError(err) {
		assert.False(result.Error)
		if assert.Len(result.Content, 1) {
			assert.Equal("text", result.Content[0].Type)
			assert.Equal("5", result.Content[0].Text)
		}
	}
}

func TestCallTool_PerRequestHeaders(t *testing.T) {
	assert := assert.New(t)

	var domain, authorization string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()
	domain = upstream.URL

	remote := newRemote(t)

	// The domain header is forwarded per-call, not per-session
	result, err := remote.CallTool(context.Background(), "get_product_by_sku", map[string]any{"sku": "X"},
		client.OptReqHeader(commerceapi.HeaderDomain, domain),
		client.OptReqHeader(commerceapi.HeaderAuthorization, "Bearer token"),
	)
	if assert.NoError(err) {
		assert.False(result.Error)
		assert.Equal("Bearer token", authorization)
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	assert := assert.New(t)
	remote := newRemote(t)

	// An unknown tool is an in-band tool error, not a JSON-RPC fault
	result, err := remote.CallTool(context.Background(), "no_such_tool", nil)
	if assert.NoError(err) {
		assert.True(result.Error)
		if assert.Len(result.Content, 1) {
			assert.Contains(result.Content[0].Text, "not found")
		}
	}
}
