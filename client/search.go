package client

import (
	"context"
	"fmt"

	"github.com/git-pkgs/mavencheck/resolve"
)

// SearchClient queries the Maven Central Solr search API.
type SearchClient struct {
	client  *Client
	baseURL string
}

var _ resolve.Index = (*SearchClient)(nil)

// NewSearchClient creates a search client. An empty baseURL uses Maven
// Central's public search endpoint.
func NewSearchClient(c *Client, baseURL string) *SearchClient {
	if baseURL == "" {
		baseURL = DefaultSearchURL
	}
	return &SearchClient{client: c, baseURL: baseURL}
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	ID         string `json:"id"`
	GroupID    string `json:"g"`
	ArtifactID string `json:"a"`
	Version    string `json:"v"`
	Packaging  string `json:"p"`
	Timestamp  int64  `json:"timestamp"`
}

// Search returns all version strings matching the query spec, in the order
// the index reports them.
func (s *SearchClient) Search(ctx context.Context, spec resolve.QuerySpec) ([]string, error) {
	var decoded searchResponse
	if err := s.client.GetJSON(ctx, SearchURL(s.baseURL, spec), &decoded); err != nil {
		return nil, fmt.Errorf("searching %s:%s: %w", spec.GroupID, spec.ArtifactID, err)
	}

	versions := make([]string, 0, len(decoded.Response.Docs))
	for _, doc := range decoded.Response.Docs {
		if doc.Version == "" {
			continue
		}
		versions = append(versions, doc.Version)
	}
	return versions, nil
}
