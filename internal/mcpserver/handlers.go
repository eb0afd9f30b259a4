package mcpserver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/git-pkgs/mavencheck/internal/version"
	"github.com/git-pkgs/mavencheck/resolve"
)

func argString(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

// coordinate builds a Coordinate from tool arguments. The second return is a
// non-empty error message when the arguments are unusable.
func coordinate(args map[string]any) (resolve.Coordinate, string) {
	dep := argString(args, "dependency")
	if dep == "" {
		return resolve.Coordinate{}, "Dependency parameter is required."
	}
	c, err := resolve.ParseCoordinate(dep, argString(args, "packaging"), argString(args, "classifier"))
	if err != nil {
		return resolve.Coordinate{}, err.Error()
	}
	return c, ""
}

func errorText(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText("Error: " + msg)
}

func (s *Server) handleLatest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	c, msg := coordinate(args)
	if msg != "" {
		return errorText(msg), nil
	}

	out := s.resolver.ResolveLatest(ctx, c)
	env := resolve.AssembleLatest("get_maven_latest_version", out)
	if env.Error != nil {
		s.log.Warn("latest version lookup failed",
			zap.String("dependency", c.Dependency()), zap.String("code", string(env.Error.Code)))
		return errorText(env.Error.Message), nil
	}
	ver, _ := env.Result["latest_version"].(string)
	s.log.Info("latest version resolved",
		zap.String("dependency", c.Dependency()), zap.String("version", ver))
	return mcp.NewToolResultText(ver), nil
}

func (s *Server) handleExists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	c, msg := coordinate(args)
	if msg != "" {
		return errorText(msg), nil
	}
	ver := argString(args, "version")
	if ver == "" {
		return errorText("Version parameter is required."), nil
	}

	out := s.resolver.ResolveExists(ctx, c, ver)
	env := resolve.AssembleExists("check_maven_version_exists", out)
	if env.Error != nil {
		s.log.Warn("existence check failed",
			zap.String("dependency", c.Dependency()), zap.String("code", string(env.Error.Code)))
		return errorText(env.Error.Message), nil
	}
	if exists, _ := env.Result["exists"].(bool); exists {
		return mcp.NewToolResultText("true"), nil
	}
	return mcp.NewToolResultText("false"), nil
}

func (s *Server) handleComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	c, msg := coordinate(args)
	if msg != "" {
		return errorText(msg), nil
	}
	ver := argString(args, "version")
	if ver == "" {
		return errorText("Version parameter is required."), nil
	}
	target := argString(args, "target_component")
	if target == "" {
		return errorText("Target component parameter is required."), nil
	}

	out := s.resolver.ResolveComponent(ctx, c, ver, version.Scope(strings.ToLower(target)))
	env := resolve.AssembleLatest("find_maven_latest_component_version", out)
	if env.Error != nil {
		s.log.Warn("component lookup failed",
			zap.String("dependency", c.Dependency()), zap.String("code", string(env.Error.Code)))
		return errorText(env.Error.Message), nil
	}
	latest, _ := env.Result["latest_version"].(string)
	return mcp.NewToolResultText(latest), nil
}

func (s *Server) handleAll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	c, msg := coordinate(args)
	if msg != "" {
		return errorText(msg), nil
	}
	ver := argString(args, "version")
	if ver == "" {
		return errorText("Version parameter is required."), nil
	}

	all := s.resolver.ResolveAllComponents(ctx, c, ver)
	return envelopeText(resolve.AssembleAll("get_maven_all_latest_versions", all))
}

func (s *Server) handleBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "batch_maven_versions_check"

	raw, ok := req.GetArguments()["dependencies"]
	if !ok {
		return envelopeText(batchError(tool, resolve.CodeMissingParameter,
			"The 'dependencies' parameter is required."))
	}
	list, ok := raw.([]any)
	if !ok {
		return envelopeText(batchError(tool, resolve.CodeInvalidInput,
			"Invalid input: 'dependencies' must be an array"))
	}
	if len(list) == 0 {
		return envelopeText(batchError(tool, resolve.CodeEmptyBatch,
			"Empty dependencies array provided"))
	}

	// Round-trip through JSON to map loosely typed tool arguments onto the
	// batch request shape.
	encoded, err := json.Marshal(list)
	if err != nil {
		return envelopeText(batchError(tool, resolve.CodeInternalError, err.Error()))
	}
	var reqs []resolve.BatchRequest
	if err := json.Unmarshal(encoded, &reqs); err != nil {
		return envelopeText(batchError(tool, resolve.CodeInvalidInput,
			"Invalid input: 'dependencies' entries must be objects"))
	}

	s.log.Info("batch check started", zap.Int("count", len(reqs)))
	res := s.resolver.ResolveBatch(ctx, reqs, 0)
	return envelopeText(resolve.AssembleBatch(tool, res))
}

func batchError(tool string, code resolve.Code, msg string) resolve.Envelope {
	return resolve.Envelope{
		Tool:   tool,
		Status: "error",
		Error:  &resolve.EnvelopeError{Code: code, Message: msg},
	}
}

func envelopeText(env resolve.Envelope) (*mcp.CallToolResult, error) {
	encoded, err := json.Marshal(env)
	if err != nil {
		return errorText(err.Error()), nil
	}
	return mcp.NewToolResultText(string(encoded)), nil
}
