// Package resolve implements latest-version resolution for Maven coordinates
// against the Maven Central search index, with a layered fallback chain for
// artifact shapes the index represents poorly.
package resolve

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/git-pkgs/mavencheck/internal/version"
)

// Index is the remote search endpoint collaborator. Search returns the raw
// version strings matching a planned query; transport failures surface as
// errors and are never retried by the engine.
type Index interface {
	Search(ctx context.Context, spec QuerySpec) ([]string, error)
}

// Repository is the direct package-repository collaborator, bypassing the
// search index.
type Repository interface {
	// ListVersions parses the repository's own metadata listing.
	ListVersions(ctx context.Context, groupID, artifactID string) ([]string, error)
	// Exists probes a single coordinate+version for existence.
	Exists(ctx context.Context, groupID, artifactID, ver, packaging, classifier string) (bool, error)
}

// Resolver resolves latest-version questions for Maven coordinates. Each
// call builds its state fresh; a Resolver is safe for concurrent use as long
// as its collaborators are.
type Resolver struct {
	index      Index
	repo       Repository
	alternates []AlternateRule
	log        *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the diagnostic sink. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithAlternates appends alternate-artifact rules to the built-in table.
func WithAlternates(rules ...AlternateRule) Option {
	return func(r *Resolver) {
		r.alternates = append(r.alternates, rules...)
	}
}

// New creates a Resolver over the given collaborators.
func New(index Index, repo Repository, opts ...Option) *Resolver {
	r := &Resolver{
		index:      index,
		repo:       repo,
		alternates: DefaultAlternates(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// recoverTo converts a panic below the public boundary into an internal
// error outcome. Collaborator faults must never crash the calling process.
func (r *Resolver) recoverTo(c Coordinate, out *Outcome) {
	if p := recover(); p != nil {
		r.log.Error("panic during resolution",
			zap.String("dependency", c.Dependency()), zap.Any("panic", p))
		*out = internalError(c, fmt.Sprintf("Unexpected error: %v", p))
	}
}

func (r *Resolver) recoverAllTo(c Coordinate, all *AllOutcome) {
	if p := recover(); p != nil {
		r.log.Error("panic during resolution",
			zap.String("dependency", c.Dependency()), zap.Any("panic", p))
		o := internalError(c, fmt.Sprintf("Unexpected error: %v", p))
		*all = AllOutcome{Major: o, Minor: o, Patch: o}
	}
}

// gather runs the fallback chain for a coordinate and returns the parsed
// version entries, or a terminal failure outcome when no strategy produced
// any.
//
// States: Primary (planned index query) -> DirectRepo (repository metadata
// listing, entered only on an empty-but-successful primary response) ->
// AlternateArtifact (one substituted retry through the index) -> Failed.
// A transport error in Primary or AlternateArtifact terminates immediately;
// a DirectRepo failure of any kind just advances the chain.
func (r *Resolver) gather(ctx context.Context, c Coordinate) ([]version.Version, *Outcome) {
	spec := Plan(c)
	r.log.Debug("searching index",
		zap.String("query", spec.Query), zap.Int("rows", spec.Rows))

	raws, err := r.index.Search(ctx, spec)
	if err != nil {
		o := transportError(c, err)
		return nil, &o
	}
	if len(raws) > 0 {
		return version.ParseAll(raws), nil
	}

	r.log.Debug("index returned no documents, probing repository",
		zap.String("dependency", c.Dependency()))
	raws, err = r.repo.ListVersions(ctx, c.GroupID, c.ArtifactID)
	if err == nil && len(raws) > 0 {
		return version.ParseAll(raws), nil
	}
	if err != nil {
		r.log.Debug("repository probe failed", zap.Error(err))
	}

	for _, rule := range r.alternates {
		if !rule.Matches(c) {
			continue
		}
		alt := rule.plan(c)
		r.log.Debug("retrying with alternate artifact", zap.String("query", alt.Query))
		raws, err = r.index.Search(ctx, alt)
		if err != nil {
			o := transportError(c, err)
			return nil, &o
		}
		if len(raws) > 0 {
			return version.ParseAll(raws), nil
		}
		// Exactly one substituted retry; no recursion through the table.
		break
	}

	o := notFound(c)
	return nil, &o
}

// ResolveLatest returns the overall latest version published for a
// coordinate.
func (r *Resolver) ResolveLatest(ctx context.Context, c Coordinate) (out Outcome) {
	defer r.recoverTo(c, &out)
	if err := c.Validate(); err != nil {
		return invalidInput(c, err.Error())
	}
	entries, failed := r.gather(ctx, c)
	if failed != nil {
		return *failed
	}
	best, err := version.Latest(entries)
	if err != nil {
		return notFound(c)
	}
	r.log.Info("resolved latest version",
		zap.String("dependency", c.Dependency()), zap.String("version", best.Raw))
	return successVersion(c, best.Raw)
}

// ResolveExists reports whether a specific version of a coordinate exists.
// The outcome carries a boolean rather than a version string on success.
func (r *Resolver) ResolveExists(ctx context.Context, c Coordinate, ver string) (out Outcome) {
	defer r.recoverTo(c, &out)
	if err := c.Validate(); err != nil {
		return invalidInput(c, err.Error())
	}
	if ver == "" {
		return Outcome{Code: CodeMissingParameter, Scope: c, Detail: "Version parameter is required."}
	}

	spec := Plan(c)
	raws, err := r.index.Search(ctx, spec)
	if err != nil {
		return transportError(c, err)
	}
	if len(raws) > 0 {
		for _, raw := range raws {
			if raw == ver {
				return successExists(c, ver, true)
			}
		}
		return successExists(c, ver, false)
	}

	// Empty index response: probe the repository for this exact version.
	exists, probeErr := r.repo.Exists(ctx, c.GroupID, c.ArtifactID, ver, spec.Packaging, c.Classifier)
	if probeErr == nil {
		return successExists(c, ver, exists)
	}
	r.log.Debug("existence probe failed", zap.Error(probeErr))

	for _, rule := range r.alternates {
		if !rule.Matches(c) {
			continue
		}
		alt := rule.plan(c)
		raws, err = r.index.Search(ctx, alt)
		if err != nil {
			return transportError(c, err)
		}
		if len(raws) > 0 {
			for _, raw := range raws {
				if raw == ver {
					return successExists(c, ver, true)
				}
			}
			return successExists(c, ver, false)
		}
		break
	}

	return notFound(c)
}

// ResolveComponent returns the latest version within the scope (major, minor,
// or patch) implied by a reference version. The reference may be any
// parseable form; partial forms are zero-padded to three components.
func (r *Resolver) ResolveComponent(ctx context.Context, c Coordinate, refRaw string, scope version.Scope) (out Outcome) {
	defer r.recoverTo(c, &out)
	if err := c.Validate(); err != nil {
		return invalidInput(c, err.Error())
	}
	if refRaw == "" {
		return Outcome{Code: CodeMissingParameter, Scope: c, Detail: "Version parameter is required."}
	}
	if !version.ValidScope(scope) {
		return invalidInput(c, fmt.Sprintf(
			"Target component %q must be one of: major, minor, patch.", string(scope)))
	}
	ref := version.Parse(refRaw)
	if ref.Kind == version.Unparseable {
		return invalidInput(c, fmt.Sprintf("Version %q is not in a recognized version format.", refRaw))
	}

	entries, failed := r.gather(ctx, c)
	if failed != nil {
		return *failed
	}
	best, err := version.SelectLatest(entries, scope, ref)
	if err != nil {
		return versionNotFound(c, refRaw, string(scope))
	}
	r.log.Info("resolved component version",
		zap.String("dependency", c.Dependency()),
		zap.String("scope", string(scope)),
		zap.String("version", best.Raw))
	return successVersion(c, best.Raw)
}

// ResolveAllComponents resolves the latest major, minor, and patch answers in
// one call, sharing a single index query. A reference that parses to no
// recognized form degrades to the overall latest version for all three
// scopes, matching how calendar-style artifacts are versioned.
func (r *Resolver) ResolveAllComponents(ctx context.Context, c Coordinate, refRaw string) (all AllOutcome) {
	defer r.recoverAllTo(c, &all)
	if err := c.Validate(); err != nil {
		o := invalidInput(c, err.Error())
		return AllOutcome{Major: o, Minor: o, Patch: o}
	}
	if refRaw == "" {
		o := Outcome{Code: CodeMissingParameter, Scope: c, Detail: "Version parameter is required."}
		return AllOutcome{Major: o, Minor: o, Patch: o}
	}

	entries, failed := r.gather(ctx, c)
	if failed != nil {
		return AllOutcome{Major: *failed, Minor: *failed, Patch: *failed}
	}

	ref := version.Parse(refRaw)
	if ref.Kind == version.Unparseable {
		best, err := version.Latest(entries)
		if err != nil {
			o := notFound(c)
			return AllOutcome{Major: o, Minor: o, Patch: o}
		}
		o := successVersion(c, best.Raw)
		return AllOutcome{Major: o, Minor: o, Patch: o}
	}

	for _, s := range []struct {
		scope version.Scope
		out   *Outcome
	}{
		{version.ScopeMajor, &all.Major},
		{version.ScopeMinor, &all.Minor},
		{version.ScopePatch, &all.Patch},
	} {
		best, err := version.SelectLatest(entries, s.scope, ref)
		if err != nil {
			*s.out = versionNotFound(c, refRaw, string(s.scope))
			continue
		}
		*s.out = successVersion(c, best.Raw)
	}
	return all
}
