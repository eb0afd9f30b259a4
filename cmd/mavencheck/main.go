// Package main provides the mavencheck MCP server entrypoint.
//
// The server speaks MCP over stdio and exposes Maven Central version
// resolution tools. Diagnostics go to stderr so stdout stays clean for the
// protocol stream.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/git-pkgs/mavencheck"
	"github.com/git-pkgs/mavencheck/client"
	"github.com/git-pkgs/mavencheck/internal/mcpserver"
	"github.com/git-pkgs/mavencheck/resolve"
)

// Commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:    "mavencheck",
		Usage:   "MCP server that lets Large Language Models query Maven Central for artifact versions",
		Version: fmt.Sprintf("%s (commit: %s)", mavencheck.Version, commit),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:  "search-url",
				Usage: "Override the Maven Central search endpoint",
				Value: client.DefaultSearchURL,
			},
			&cli.StringFlag{
				Name:  "repo-url",
				Usage: "Override the Maven repository root",
				Value: client.DefaultRepoURL,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-request HTTP timeout",
				Value: 30 * time.Second,
			},
			&cli.StringFlag{
				Name:  "alternates",
				Usage: "Path to a YAML file with extra alternate-artifact rules",
			},
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	log, err := buildLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	httpClient := client.New(
		client.WithTimeout(c.Duration("timeout")),
		client.WithCircuitBreaker(),
	)

	opts := []resolve.Option{resolve.WithLogger(log)}
	if path := c.String("alternates"); path != "" {
		rules, err := resolve.LoadAlternates(path)
		if err != nil {
			return fmt.Errorf("loading alternates from %s: %w", path, err)
		}
		opts = append(opts, resolve.WithAlternates(rules...))
	}

	resolver := resolve.New(
		client.NewSearchClient(httpClient, c.String("search-url")),
		client.NewRepoClient(httpClient, c.String("repo-url")),
		opts...,
	)

	log.Info("starting MCP server",
		zap.String("search_url", c.String("search-url")),
		zap.String("repo_url", c.String("repo-url")))

	srv := mcpserver.New(resolver, mavencheck.Version, log)
	return srv.ServeStdio()
}

// buildLogger writes structured logs to stderr only. stdout carries the MCP
// protocol stream.
func buildLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
