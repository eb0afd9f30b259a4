// Package mavencheck resolves "latest version" questions for Maven Central
// artifacts.
//
// The package answers four questions for a groupId:artifactId coordinate:
// the overall latest version, whether a specific version exists, the latest
// version within a major/minor/patch scope implied by a reference version,
// and all three scoped answers at once. Lookups go through the Maven Central
// search index first and fall back to the repository's own metadata when the
// index has no documents for the coordinate.
//
// Basic usage:
//
//	import (
//		"context"
//		"github.com/git-pkgs/mavencheck"
//	)
//
//	resolver := mavencheck.DefaultResolver()
//	out := resolver.ResolveLatest(context.Background(), mavencheck.MustCoordinate("org.apache.commons:commons-lang3"))
//	if out.OK() {
//		fmt.Println(out.Version)
//	}
//
// The cmd/mavencheck binary exposes the same operations as MCP tools over
// stdio.
package mavencheck

import (
	"github.com/git-pkgs/mavencheck/client"
	"github.com/git-pkgs/mavencheck/resolve"
)

// Version is the release version of this module.
const Version = "0.1.0"

// Re-export types from resolve
type (
	// Resolver resolves latest-version questions for Maven coordinates.
	Resolver = resolve.Resolver

	// Coordinate identifies a Maven artifact.
	Coordinate = resolve.Coordinate

	// Outcome is the terminal result of a resolution operation.
	Outcome = resolve.Outcome

	// AllOutcome carries per-scope outcomes for all-components resolution.
	AllOutcome = resolve.AllOutcome

	// Code classifies a failed outcome.
	Code = resolve.Code

	// BatchRequest is one coordinate in a batch resolution.
	BatchRequest = resolve.BatchRequest

	// BatchResult holds per-item batch outcomes in input order.
	BatchResult = resolve.BatchResult

	// AlternateRule substitutes a sibling artifact when a lookup comes up
	// empty.
	AlternateRule = resolve.AlternateRule
)

// Re-export failure codes
const (
	CodeInvalidInput       = resolve.CodeInvalidInput
	CodeMissingParameter   = resolve.CodeMissingParameter
	CodeDependencyNotFound = resolve.CodeDependencyNotFound
	CodeVersionNotFound    = resolve.CodeVersionNotFound
	CodeTransportError     = resolve.CodeTransportError
	CodeInternalError      = resolve.CodeInternalError
)

// Re-export errors
var (
	ErrNotFound          = client.ErrNotFound
	ErrInvalidCoordinate = resolve.ErrInvalidCoordinate
)

// HTTPError represents an unexpected HTTP error response.
type HTTPError = client.HTTPError

// ParseCoordinate parses a dependency string in 'groupId:artifactId' or
// pkg:maven PURL form.
func ParseCoordinate(dependency, packaging, classifier string) (Coordinate, error) {
	return resolve.ParseCoordinate(dependency, packaging, classifier)
}

// MustCoordinate is ParseCoordinate with default packaging, panicking on a
// malformed dependency string. Intended for tests and examples.
func MustCoordinate(dependency string) Coordinate {
	c, err := resolve.ParseCoordinate(dependency, "", "")
	if err != nil {
		panic(err)
	}
	return c
}

// NewResolver creates a Resolver over the given collaborators.
func NewResolver(index resolve.Index, repo resolve.Repository, opts ...resolve.Option) *Resolver {
	return resolve.New(index, repo, opts...)
}

// DefaultResolver returns a Resolver wired to Maven Central's public search
// index and repository with sensible client defaults.
func DefaultResolver(opts ...resolve.Option) *Resolver {
	c := client.New(client.WithCircuitBreaker())
	return resolve.New(
		client.NewSearchClient(c, ""),
		client.NewRepoClient(c, ""),
		opts...,
	)
}
