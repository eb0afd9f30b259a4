package resolve

import (
	"fmt"
	"strings"
)

// defaultRows asks the index for the full version population rather than the
// single newest record; component-scoped ranking needs every version.
const defaultRows = 100

// QuerySpec is the planned form of an index query.
type QuerySpec struct {
	GroupID    string
	ArtifactID string
	Packaging  string
	Classifier string
	Query      string // Solr query expression
	Rows       int
}

// Plan builds the index query for a coordinate. Aggregator artifacts
// (bill-of-materials and dependency-management parents, detected by the
// conventional -bom / -dependencies name suffixes) are published only as POM
// metadata, so their packaging is forced to pom regardless of what the
// caller asked for.
func Plan(c Coordinate) QuerySpec {
	packaging := c.Packaging
	if packaging == "" {
		packaging = DefaultPackaging
	}
	if IsAggregator(c.ArtifactID) {
		packaging = "pom"
	}
	return buildSpec(c.GroupID, c.ArtifactID, packaging, c.Classifier)
}

// IsAggregator reports whether an artifact name marks an umbrella artifact.
func IsAggregator(artifactID string) bool {
	return strings.HasSuffix(artifactID, "-bom") || strings.HasSuffix(artifactID, "-dependencies")
}

func buildSpec(groupID, artifactID, packaging, classifier string) QuerySpec {
	q := fmt.Sprintf("g:%s AND a:%s", groupID, artifactID)
	if packaging != "" {
		q += " AND p:" + packaging
	}
	if classifier != "" {
		q += " AND l:" + classifier
	}
	return QuerySpec{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Packaging:  packaging,
		Classifier: classifier,
		Query:      q,
		Rows:       defaultRows,
	}
}
