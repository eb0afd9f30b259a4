package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/git-pkgs/purl"
)

// DefaultPackaging is assumed when a coordinate does not specify one.
const DefaultPackaging = "jar"

// ErrInvalidCoordinate is wrapped by every coordinate validation failure.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate identifies a publishable Maven unit. GroupID and ArtifactID are
// non-empty and colon-free; an empty Classifier means none. Coordinates are
// built per request and never mutated.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Packaging  string
	Classifier string
}

// ParseCoordinate parses "groupId:artifactId" or a "pkg:maven/..." package
// URL into a Coordinate with the given packaging and classifier. Packaging
// defaults to jar when empty.
func ParseCoordinate(dependency, packaging, classifier string) (Coordinate, error) {
	if dependency == "" {
		return Coordinate{}, fmt.Errorf("%w: dependency is required", ErrInvalidCoordinate)
	}
	if packaging == "" {
		packaging = DefaultPackaging
	}

	if strings.HasPrefix(dependency, "pkg:") {
		p, err := purl.Parse(dependency)
		if err != nil {
			return Coordinate{}, fmt.Errorf("%w: %v", ErrInvalidCoordinate, err)
		}
		if p.Type != "maven" {
			return Coordinate{}, fmt.Errorf("%w: purl type %q is not maven", ErrInvalidCoordinate, p.Type)
		}
		c := Coordinate{GroupID: p.Namespace, ArtifactID: p.Name, Packaging: packaging, Classifier: classifier}
		return c, c.Validate()
	}

	parts := strings.Split(dependency, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, fmt.Errorf(
			"%w: dependency %q does not match the required format 'groupId:artifactId'",
			ErrInvalidCoordinate, dependency)
	}
	c := Coordinate{GroupID: parts[0], ArtifactID: parts[1], Packaging: packaging, Classifier: classifier}
	return c, c.Validate()
}

// Validate checks the coordinate invariants.
func (c Coordinate) Validate() error {
	if c.GroupID == "" || c.ArtifactID == "" {
		return fmt.Errorf("%w: groupId and artifactId are required", ErrInvalidCoordinate)
	}
	if strings.Contains(c.GroupID, ":") || strings.Contains(c.ArtifactID, ":") {
		return fmt.Errorf("%w: groupId and artifactId must not contain ':'", ErrInvalidCoordinate)
	}
	return nil
}

// Dependency returns the "groupId:artifactId" form.
func (c Coordinate) Dependency() string {
	return c.GroupID + ":" + c.ArtifactID
}

// PURL renders the coordinate as a package URL, with the version when given.
func (c Coordinate) PURL(version string) string {
	s := fmt.Sprintf("pkg:maven/%s/%s", c.GroupID, c.ArtifactID)
	if version != "" {
		s += "@" + version
	}
	return s
}

func (c Coordinate) String() string {
	s := c.Dependency()
	if c.Packaging != "" {
		s += ":" + c.Packaging
	}
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	return s
}
