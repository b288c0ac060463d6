package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/purpleblog/internal/logging"
)

func newServeCommand() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server over stdio exposing the blog tools",
		Long: `serve runs a Model Context Protocol (MCP) server on stdin/stdout.

The build flags set the defaults for the tools; each tool call may override
the input and output directories. Logs go to stderr.`,
		Example:      `purpleblog serve -i ./posts -o ./public -n "My blog" -d "Notes"`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, opts)
		},
	}
	addBuildFlags(cmd, opts)
	return cmd
}

func runServer(cmd *cobra.Command, opts *buildOptions) error {
	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := opts.resolve()
	if err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "purpleblog",
		Version: version,
	}, nil)

	registerTools(server, newToolHandlers(cfg, logger))

	logger.Debug("serving MCP over stdio", "input", cfg.InputDir, "output", cfg.OutputDir)
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
