package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	tool "github.com/mutablelogic/go-commerce/pkg/tool"
	version "github.com/mutablelogic/go-commerce/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Context
	ctx      context.Context
	execName string
}

type CLI struct {
	Globals

	// Server commands
	Serve ServeCmd `cmd:"" help:"Run the MCP server over HTTP"`
	Stdio StdioCmd `cmd:"" help:"Run the MCP server over stdio"`

	// Client commands
	Tools ToolsCmd `cmd:"" help:"List the tools exposed by a server"`
	Call  CallCmd  `cmd:"" help:"Call a tool on a server"`

	// Other commands
	Version VersionCmd `cmd:"" help:"Print the version"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("MCP tool server for the commerce REST API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Run the selected command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (*VersionCmd) Run(g *Globals) error {
	fmt.Println(version.Version())
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Toolkit returns the toolkit with all tools registered
func (g *Globals) Toolkit() (*tool.Toolkit, error) {
	return newToolkit()
}

func execName() string {
	name, err := os.Executable()
	if err != nil {
		return "commerce"
	}
	return filepath.Base(name)
}
