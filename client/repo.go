package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/git-pkgs/mavencheck/resolve"
)

// RepoClient reads artifact listings directly from a Maven repository.
type RepoClient struct {
	client  *Client
	baseURL string
}

var _ resolve.Repository = (*RepoClient)(nil)

// NewRepoClient creates a repository client. An empty baseURL uses Maven
// Central's public repository.
func NewRepoClient(c *Client, baseURL string) *RepoClient {
	if baseURL == "" {
		baseURL = DefaultRepoURL
	}
	return &RepoClient{client: c, baseURL: baseURL}
}

// mavenMetadata mirrors the maven-metadata.xml layout published alongside
// each artifact.
type mavenMetadata struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Versioning struct {
		Latest   string   `xml:"latest"`
		Release  string   `xml:"release"`
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

// ListVersions returns every version published for the artifact. A missing
// metadata file yields an empty list, not an error.
func (r *RepoClient) ListVersions(ctx context.Context, groupID, artifactID string) ([]string, error) {
	var meta mavenMetadata
	err := r.client.GetXML(ctx, MetadataURL(r.baseURL, groupID, artifactID), &meta)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing versions for %s:%s: %w", groupID, artifactID, err)
	}
	return meta.Versioning.Versions, nil
}

// Exists probes the repository for a specific artifact file.
func (r *RepoClient) Exists(ctx context.Context, groupID, artifactID, version, packaging, classifier string) (bool, error) {
	ok, err := r.client.Head(ctx, ArtifactURL(r.baseURL, groupID, artifactID, version, packaging, classifier))
	if err != nil {
		return false, fmt.Errorf("probing %s:%s:%s: %w", groupID, artifactID, version, err)
	}
	return ok, nil
}
