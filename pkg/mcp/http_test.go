package mcp_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	commerceapi "github.com/mutablelogic/go-commerce/pkg/commerceapi"
	mcp "github.com/mutablelogic/go-commerce/pkg/mcp"
	tool "github.com/mutablelogic/go-commerce/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////
// HELPERS

func newHTTPServer(t *testing.T, tools ...tool.Tool) *httptest.Server {
	t.Helper()

	toolkit, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	server, err := mcp.New("test", "0.0.0", mcp.WithToolkit(toolkit))
	if err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(server.HandleFunc())
	mux.HandleFunc("/", mcp.NotFound)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, body string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+mcp.PathMCP, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeToolResult(t *testing.T, r io.Reader) toolResult {
	t.Helper()

	var resp response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Err != nil {
		t.Fatalf("unexpected fault: %v", resp.Err)
	}

	var result toolResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatal(err)
	}
	return result
}

///////////////////////////////////////////////////////////////////////
// TESTS

func TestHTTP_Initialize(t *testing.T) {
	assert := assert.New(t)
	ts := newHTTPServer(t, commerceapi.NewTools()...)

	resp := post(t, ts, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","clientInfo":{"name":"test","version":"0.0.0"}}}`, nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get(mcp.HeaderSessionID))

	var body response
	assert.NoError(json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(body.Err)

	var result mcp.ResponseInitialize
	assert.NoError(json.Unmarshal(body.Result, &result))
	assert.Equal("2025-06-18", result.Version)
}

func TestHTTP_Notification(t *testing.T) {
	assert := assert.New(t)
	ts := newHTTPServer(t, commerceapi.NewTools()...)

	resp := post(t, ts, `{"jsonrpc":"2.0","method":"notifications/initialized"}`, nil)
	assert.Equal(http.StatusAccepted, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	assert.NoError(err)
	assert.Empty(data)
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	assert := assert.New(t)
	ts := newHTTPServer(t, commerceapi.NewTools()...)

	resp, err := http.Get(ts.URL + mcp.PathMCP)
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHTTP_NotFound(t *testing.T) {
	assert := assert.New(t)
	ts := newHTTPServer(t, commerceapi.NewTools()...)

	resp, err := http.Get(ts.URL + "/other")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestHTTP_MissingHeaders(t *testing.T) {
	assert := assert.New(t)

	// Count upstream requests to prove the failure happens before any
	// network I/O
	var calls int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	ts := newHTTPServer(t, commerceapi.NewTools()...)

	// Domain present, authorization absent
	resp := post(t, ts, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_product_by_sku","arguments":{"sku":"X"}}}`, map[string]string{
		commerceapi.HeaderDomain: upstream.URL,
	})
	assert.Equal(http.StatusOK, resp.StatusCode)

	result := decodeToolResult(t, resp.Body)
	assert.True(result.IsError)
	if assert.Len(result.Content, 1) {
		assert.Contains(result.Content[0].Text, "Missing required headers")
		assert.Contains(result.Content[0].Text, "Authorization")
	}
	assert.Equal(0, calls)
}

func TestHTTP_ToolCall(t *testing.T) {
	assert := assert.New(t)

	// The upstream response is passed through with field order intact
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"zulu":1,"alpha":{"items":[2,3]}}`))
	}))
	defer upstream.Close()

	ts := newHTTPServer(t, commerceapi.NewTools()...)

	resp := post(t, ts, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_product_by_sku","arguments":{"sku":"X"}}}`, map[string]string{
		commerceapi.HeaderDomain:        upstream.URL,
		commerceapi.HeaderAuthorization: "Bearer token",
	})
	assert.Equal(http.StatusOK, resp.StatusCode)

	result := decodeToolResult(t, resp.Body)
	assert.False(result.IsError)
	if assert.Len(result.Content, 1) {
		assert.Equal("text", result.Content[0].Type)

		expected := new(bytes.Buffer)
		assert.NoError(json.Indent(expected, []byte(`{"zulu":1,"alpha":{"items":[2,3]}}`), "", "  "))
		assert.Equal(expected.String(), result.Content[0].Text)
	}
}

func TestHTTP_UpstreamError(t *testing.T) {
	assert := assert.New(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no such product"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	ts := newHTTPServer(t, commerceapi.NewTools()...)

	resp := post(t, ts, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_product_by_sku","arguments":{"sku":"X"}}}`, map[string]string{
		commerceapi.HeaderDomain:        upstream.URL,
		commerceapi.HeaderAuthorization: "token",
	})

	result := decodeToolResult(t, resp.Body)
	assert.True(result.IsError)
	if assert.Len(result.Content, 1) {
		assert.Contains(result.Content[0].Text, "Error: API call error")
		assert.Contains(result.Content[0].Text, "404")
		assert.Contains(result.Content[0].Text, "no such product")
	}
}

func TestHTTP_BadRequest(t *testing.T) {
	assert := assert.New(t)
	ts := newHTTPServer(t, commerceapi.NewTools()...)

	resp := post(t, ts, `not json`, nil)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
}
