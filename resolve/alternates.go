package resolve

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AlternateRule describes a known index gap: a coordinate shape whose
// versions are better represented under a substitute artifact name or
// packaging. Rules are additive data; new exceptions extend the table
// instead of adding code paths.
type AlternateRule struct {
	// Group limits the rule to one groupId when set.
	Group string `yaml:"group,omitempty"`
	// ArtifactSuffix matches artifact names by suffix. Exactly one of
	// ArtifactSuffix or Artifact must be set.
	ArtifactSuffix string `yaml:"artifact_suffix,omitempty"`
	// Artifact matches one artifact name exactly.
	Artifact string `yaml:"artifact,omitempty"`

	// TrimSuffix retries against the sibling primary artifact: the matched
	// suffix is stripped from the artifact name (spring-boot-dependencies
	// retries as spring-boot).
	TrimSuffix bool `yaml:"trim_suffix,omitempty"`
	// Substitute replaces the artifact name outright when set.
	Substitute string `yaml:"substitute,omitempty"`
	// Packaging overrides the query packaging when set. This bypasses the
	// planner's aggregator override, which is the point: some BOMs are
	// indexed only under jar.
	Packaging string `yaml:"packaging,omitempty"`
}

// Matches reports whether the rule applies to a coordinate.
func (r AlternateRule) Matches(c Coordinate) bool {
	if r.Group != "" && r.Group != c.GroupID {
		return false
	}
	if r.Artifact != "" {
		return c.ArtifactID == r.Artifact
	}
	if r.ArtifactSuffix != "" {
		return strings.HasSuffix(c.ArtifactID, r.ArtifactSuffix)
	}
	return false
}

// plan builds the substituted query for a matched coordinate.
func (r AlternateRule) plan(c Coordinate) QuerySpec {
	artifact := c.ArtifactID
	if r.Substitute != "" {
		artifact = r.Substitute
	} else if r.TrimSuffix && r.ArtifactSuffix != "" {
		artifact = strings.TrimSuffix(artifact, r.ArtifactSuffix)
	}

	packaging := r.Packaging
	if packaging == "" {
		alt := Coordinate{GroupID: c.GroupID, ArtifactID: artifact, Packaging: c.Packaging, Classifier: c.Classifier}
		return Plan(alt)
	}
	return buildSpec(c.GroupID, artifact, packaging, c.Classifier)
}

// DefaultAlternates returns the built-in rule table.
func DefaultAlternates() []AlternateRule {
	return []AlternateRule{
		// Aggregator parents are often indexed incompletely; the sibling
		// primary artifact under the same group carries the real history.
		{ArtifactSuffix: "-dependencies", TrimSuffix: true},
		// Some BOMs predate pom-packaging indexing and appear only as jar.
		{ArtifactSuffix: "-bom", Packaging: "jar"},
	}
}

type alternatesFile struct {
	Rules []AlternateRule `yaml:"rules"`
}

// LoadAlternates reads additional rules from a YAML file of the form:
//
//	rules:
//	  - group: org.example
//	    artifact: example-parent
//	    substitute: example-core
func LoadAlternates(path string) ([]AlternateRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alternates file: %w", err)
	}
	var f alternatesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing alternates file: %w", err)
	}
	for i, r := range f.Rules {
		if r.Artifact == "" && r.ArtifactSuffix == "" {
			return nil, fmt.Errorf("alternates rule %d: artifact or artifact_suffix is required", i)
		}
	}
	return f.Rules, nil
}
