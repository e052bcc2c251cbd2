package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	commerceapi "github.com/mutablelogic/go-commerce/pkg/commerceapi"
	mcp "github.com/mutablelogic/go-commerce/pkg/mcp"
	mcpclient "github.com/mutablelogic/go-commerce/pkg/mcp/client"
	version "github.com/mutablelogic/go-commerce/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct {
	URL string `arg:"" help:"MCP server URL"`
}

type CallCmd struct {
	URL    string   `arg:"" help:"MCP server URL"`
	Name   string   `arg:"" help:"Tool name"`
	Args   []string `arg:"" optional:"" help:"Tool arguments as key=value pairs"`
	Domain string   `name:"domain" env:"COMMERCE_DOMAIN" help:"Base URL of the commerce instance"`
	Token  string   `name:"token" env:"COMMERCE_TOKEN" help:"Bearer token for the commerce instance"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCmd) Run(g *Globals) error {
	c, err := g.connect(cmd.URL, "")
	if err != nil {
		return err
	}
	if _, err := c.Initialize(g.ctx); err != nil {
		return err
	}

	tools, err := c.ListTools(g.ctx)
	if err != nil {
		return err
	}
	for _, tool := range tools {
		fmt.Printf("%s\n", tool.Name)
		if tool.Description != "" {
			fmt.Printf("  %s\n", tool.Description)
		}
	}
	fmt.Printf("\n%d tools\n", len(tools))
	return nil
}

func (cmd *CallCmd) Run(g *Globals) error {
	c, err := g.connect(cmd.URL, cmd.Token)
	if err != nil {
		return err
	}
	if _, err := c.Initialize(g.ctx); err != nil {
		return err
	}

	// Parse key=value args into a JSON object
	args, err := parseArgs(cmd.Args)
	if err != nil {
		return err
	}

	// The domain header is forwarded per-call
	var opts []client.RequestOpt
	if cmd.Domain != "" {
		opts = append(opts, client.OptReqHeader(commerceapi.HeaderDomain, cmd.Domain))
	}

	result, err := c.CallTool(g.ctx, cmd.Name, args, opts...)
	if err != nil {
		return err
	}

	if result.Error {
		fmt.Fprintln(os.Stderr, "Tool returned an error")
	}
	for _, content := range result.Content {
		switch content.Type {
		case "text":
			fmt.Println(content.Text)
		default:
			fmt.Printf("[%s] %s\n", content.Type, content.MimeType)
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) connect(url, token string) (*mcpclient.Client, error) {
	opts := []client.ClientOpt{}
	if g.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if token != "" {
		opts = append(opts, client.OptReqToken(client.Token{Scheme: client.Bearer, Value: strings.TrimPrefix(token, "Bearer ")}))
	}
	return mcpclient.New(url, mcp.ClientInfo{
		Name:    g.execName,
		Version: version.Version(),
	}, opts...)
}

// parseArgs converts key=value pairs into a JSON object. Values which
// parse as JSON are carried as-is, anything else is a string.
func parseArgs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("argument must be key=value, got %q", pair)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			args[key] = parsed
		} else {
			args[key] = value
		}
	}
	return args, nil
}
