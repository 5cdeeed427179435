package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/wadew/gitlab-mcp-sub001/pkg/standalone"
)

func main() {
	app := &cli.App{
		Name:        "gitlab-mcp",
		Usage:       "GitLab MCP Server",
		Description: "Exposes a GitLab instance as MCP tools, resources and prompts",
		Flags: []cli.Flag{
			portFlag,
			serverTypeFlag,
			dbDirFlag,
			policyFileFlag,
			readOnlyFlag,
			dynamicToolsFlag,
			logLevelFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func run(c *cli.Context) error {
	config := &standalone.Config{
		Addr:             fmt.Sprintf(":%d", c.Int(portFlag.Name)),
		ServerType:       c.String(serverTypeFlag.Name),
		DBDir:            c.String(dbDirFlag.Name),
		PolicyFile:       c.String(policyFileFlag.Name),
		ReadOnly:         c.Bool(readOnlyFlag.Name),
		DynamicToolsOnly: c.Bool(dynamicToolsFlag.Name),
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "gitlab-mcp",
		Level: hclog.LevelFromString(c.String(logLevelFlag.Name)),
		// stdout carries the stdio transport; logs must stay off it.
		Output: os.Stderr,
	})

	// The GitLab client is injected by embedders via standalone.New. The
	// bundled binary serves the client-independent surface.
	server, err := standalone.New(config, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		log.Println("Received signal, shutting down...")
	case serverErr = <-errChan:
		log.Println("Server error, shutting down...")
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	server.Stop(shutdownCtx)

	log.Println("Server shut down")

	return serverErr
}
