package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	// Packages
	calc "github.com/mutablelogic/go-commerce/pkg/calc"
	commerceapi "github.com/mutablelogic/go-commerce/pkg/commerceapi"
	mcp "github.com/mutablelogic/go-commerce/pkg/mcp"
	tool "github.com/mutablelogic/go-commerce/pkg/tool"
	version "github.com/mutablelogic/go-commerce/pkg/version"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCmd struct {
	Addr string `name:"addr" default:":8080" env:"COMMERCE_ADDR" help:"Address to listen on"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCmd) Run(g *Globals) error {
	server, err := newServer(g)
	if err != nil {
		return err
	}

	// The MCP endpoint is the single served path, everything else is
	// not found. The server serves the default mux.
	path, fn := server.HandleFunc()
	http.HandleFunc(path, fn)
	http.HandleFunc("/", mcp.NotFound)

	// Create the HTTP server
	httpserver, err := httpserver.New(cmd.Addr, nil)
	if err != nil {
		return err
	}

	// Run the server until the context is done
	fmt.Fprintf(os.Stderr, "%s@%s listening on %s%s\n", g.execName, version.Version(), cmd.Addr, path)
	defer fmt.Fprintln(os.Stderr, "server stopped")
	return httpserver.Run(g.ctx)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// newToolkit returns a toolkit with the commerce API and arithmetic
// tools registered
func newToolkit(opts ...commerceapi.Opt) (*tool.Toolkit, error) {
	toolkit, err := tool.NewToolkit(commerceapi.NewTools(opts...)...)
	if err != nil {
		return nil, err
	}
	if err := toolkit.Register(calc.NewTools()...); err != nil {
		return nil, err
	}
	return toolkit, nil
}

// newServer returns an MCP server with the toolkit registered
func newServer(g *Globals) (*mcp.Server, error) {
	toolkit, err := g.Toolkit()
	if err != nil {
		return nil, err
	}

	if g.Verbose {
		var names []string
		for _, t := range toolkit.Tools() {
			names = append(names, t.Name())
		}
		fmt.Fprintln(os.Stderr, "tools:", strings.Join(names, ", "))
	}

	return mcp.New(g.execName, version.Version(), mcp.WithToolkit(toolkit))
}
