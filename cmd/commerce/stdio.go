package main

import (
	"fmt"
	"os"

	// Packages
	commerceapi "github.com/mutablelogic/go-commerce/pkg/commerceapi"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type StdioCmd struct {
	Domain string `name:"domain" env:"COMMERCE_DOMAIN" help:"Base URL of the commerce instance"`
	Token  string `name:"token" env:"COMMERCE_TOKEN" help:"Bearer token for the commerce instance"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *StdioCmd) Run(g *Globals) error {
	server, err := newServer(g)
	if err != nil {
		return err
	}

	// With stdio there are no transport headers, so the credentials are
	// carried through the context instead
	ctx := g.ctx
	if cmd.Domain != "" || cmd.Token != "" {
		ctx = commerceapi.WithCredentials(ctx, cmd.Domain, cmd.Token)
	}

	fmt.Fprintln(os.Stderr, "Running MCP server on stdio...")
	defer fmt.Fprintln(os.Stderr, "MCP server stopped")
	return server.RunStdio(ctx, os.Stdin, os.Stdout)
}
