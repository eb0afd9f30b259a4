// Package mcpserver exposes the resolution engine as MCP tools over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/git-pkgs/mavencheck/resolve"
)

const serverName = "maven-check"

// Server registers the Maven resolution tools on an MCP stdio server.
type Server struct {
	resolver *resolve.Resolver
	log      *zap.Logger
	mcp      *server.MCPServer
}

// New creates a Server with all tools registered.
func New(resolver *resolve.Resolver, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		resolver: resolver,
		log:      log,
		mcp: server.NewMCPServer(serverName, version,
			server.WithToolCapabilities(false),
			server.WithRecovery()),
	}
	s.register()
	return s
}

func (s *Server) register() {
	s.mcp.AddTool(mcp.NewTool("get_maven_latest_version",
		mcp.WithDescription("Get the latest version of a Maven dependency"),
		mcp.WithString("dependency", mcp.Required(),
			mcp.Description("The dependency in the format 'groupId:artifactId'.")),
		mcp.WithString("packaging",
			mcp.Description("The packaging type, defaults to 'jar'."),
			mcp.DefaultString(resolve.DefaultPackaging)),
		mcp.WithString("classifier",
			mcp.Description("The classifier, if any.")),
	), s.handleLatest)

	s.mcp.AddTool(mcp.NewTool("check_maven_version_exists",
		mcp.WithDescription("Check if a specific version of a Maven dependency exists"),
		mcp.WithString("dependency", mcp.Required(),
			mcp.Description("The dependency in the format 'groupId:artifactId'.")),
		mcp.WithString("version", mcp.Required(),
			mcp.Description("The version to check.")),
		mcp.WithString("packaging",
			mcp.Description("The packaging type, defaults to 'jar'."),
			mcp.DefaultString(resolve.DefaultPackaging)),
		mcp.WithString("classifier",
			mcp.Description("The classifier, if any.")),
	), s.handleExists)

	s.mcp.AddTool(mcp.NewTool("find_maven_latest_component_version",
		mcp.WithDescription("Get the latest version of a Maven dependency scoped to a version component"),
		mcp.WithString("dependency", mcp.Required(),
			mcp.Description("The dependency in the format 'groupId:artifactId'.")),
		mcp.WithString("version", mcp.Required(),
			mcp.Description("The reference version in 'MAJOR.MINOR.PATCH' format.")),
		mcp.WithString("target_component", mcp.Required(),
			mcp.Description("Which component to maximize: 'major', 'minor' or 'patch'.")),
		mcp.WithString("packaging",
			mcp.Description("The packaging type, defaults to 'jar'."),
			mcp.DefaultString(resolve.DefaultPackaging)),
		mcp.WithString("classifier",
			mcp.Description("The classifier, if any.")),
	), s.handleComponent)

	s.mcp.AddTool(mcp.NewTool("get_maven_all_latest_versions",
		mcp.WithDescription("Get the latest major, minor and patch versions of a Maven dependency in one call"),
		mcp.WithString("dependency", mcp.Required(),
			mcp.Description("The dependency in the format 'groupId:artifactId'.")),
		mcp.WithString("version", mcp.Required(),
			mcp.Description("The reference version.")),
		mcp.WithString("packaging",
			mcp.Description("The packaging type, defaults to 'jar'."),
			mcp.DefaultString(resolve.DefaultPackaging)),
		mcp.WithString("classifier",
			mcp.Description("The classifier, if any.")),
	), s.handleAll)

	s.mcp.AddTool(mcp.NewTool("batch_maven_versions_check",
		mcp.WithDescription("Check latest versions for multiple Maven dependencies in a single request"),
		mcp.WithArray("dependencies", mcp.Required(),
			mcp.Description("List of objects with 'dependency', 'version' and optional 'packaging' and 'classifier'.")),
	), s.handleBatch)
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
