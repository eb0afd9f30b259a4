package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/git-pkgs/mavencheck/resolve"
)

const (
	// DefaultSearchURL is the Maven Central Solr search endpoint.
	DefaultSearchURL = "https://search.maven.org/solrsearch/select"
	// DefaultRepoURL is the Maven Central repository root.
	DefaultRepoURL = "https://repo1.maven.org/maven2"
)

// SearchURL builds a Solr search query URL for the given spec.
func SearchURL(base string, spec resolve.QuerySpec) string {
	q := url.Values{}
	q.Set("q", spec.Query)
	q.Set("core", "gav")
	q.Set("rows", strconv.Itoa(spec.Rows))
	q.Set("wt", "json")
	return base + "?" + q.Encode()
}

// MetadataURL builds the maven-metadata.xml URL for an artifact.
func MetadataURL(base, groupID, artifactID string) string {
	return fmt.Sprintf("%s/%s/%s/maven-metadata.xml",
		strings.TrimSuffix(base, "/"), groupPath(groupID), artifactID)
}

// ArtifactURL builds the download URL for a specific artifact file.
func ArtifactURL(base, groupID, artifactID, version, packaging, classifier string) string {
	name := artifactID + "-" + version
	if classifier != "" {
		name += "-" + classifier
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s.%s",
		strings.TrimSuffix(base, "/"), groupPath(groupID), artifactID, version, name, extension(packaging))
}

func groupPath(groupID string) string {
	return strings.ReplaceAll(groupID, ".", "/")
}

// extension maps a packaging type to its repository file extension.
func extension(packaging string) string {
	switch packaging {
	case "", "jar":
		return "jar"
	case "bundle", "maven-plugin":
		return "jar"
	default:
		return packaging
	}
}
