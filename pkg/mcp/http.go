package mcp

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	uuid "github.com/google/uuid"
	commerceapi "github.com/mutablelogic/go-commerce/pkg/commerceapi"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// PathMCP is the single path serving the Streamable HTTP transport
	PathMCP = "/mcp"
)

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// HandleFunc returns the path and handler for the Streamable HTTP
// transport. Requests are POSTed JSON-RPC messages; the upstream domain
// and authorization headers are carried through to tool invocations.
func (server *Server) HandleFunc() (string, http.HandlerFunc) {
	return PathMCP, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			server.serveHTTP(w, r)
		default:
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}
}

// NotFound is the handler for all paths other than the MCP endpoint
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = httpresponse.Error(w, httpresponse.ErrNotFound, "Not found")
}

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (server *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
		return
	}

	// Decode the request
	var request Request
	if err := json.Unmarshal(body, &request); err != nil {
		_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
		return
	}

	// The two load-bearing headers are carried in the context, out-of-band
	// from the tool arguments. Their absence is only detected when a tool
	// makes an upstream request.
	ctx := commerceapi.WithCredentials(r.Context(),
		r.Header.Get(commerceapi.HeaderDomain),
		r.Header.Get(commerceapi.HeaderAuthorization),
	)

	// Issue a session identifier on initialize
	if request.Method == MessageTypeInitialize {
		w.Header().Set(HeaderSessionID, uuid.NewString())
	}

	// A notification is accepted with no body
	response := server.respond(ctx, &request)
	if response == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), response)
}
