package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestListVersions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/com/google/guava/guava/maven-metadata.xml", func(w http.ResponseWriter, r *http.Request) {
		metadata := `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>com.google.guava</groupId>
  <artifactId>guava</artifactId>
  <versioning>
    <latest>33.0.0-jre</latest>
    <release>33.0.0-jre</release>
    <versions>
      <version>31.1-jre</version>
      <version>32.1.0-jre</version>
      <version>33.0.0-jre</version>
    </versions>
  </versioning>
</metadata>`
		_, _ = w.Write([]byte(metadata))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	rc := NewRepoClient(testClient(), server.URL)
	versions, err := rc.ListVersions(context.Background(), "com.google.guava", "guava")
	if err != nil {
		t.Fatalf("ListVersions failed: %v", err)
	}
	want := []string{"31.1-jre", "32.1.0-jre", "33.0.0-jre"}
	if !reflect.DeepEqual(versions, want) {
		t.Errorf("versions = %v, want %v", versions, want)
	}
}

func TestListVersionsMissingMetadata(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	rc := NewRepoClient(testClient(), server.URL)
	versions, err := rc.ListVersions(context.Background(), "org.absent", "nothing")
	if err != nil {
		t.Fatalf("ListVersions failed: %v", err)
	}
	if versions != nil {
		t.Errorf("versions = %v, want nil", versions)
	}
}

func TestExists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/com/google/guava/guava/32.1.0-jre/guava-32.1.0-jre.jar",
		func(w http.ResponseWriter, r *http.Request) {})

	server := httptest.NewServer(mux)
	defer server.Close()

	rc := NewRepoClient(testClient(), server.URL)

	ok, err := rc.Exists(context.Background(), "com.google.guava", "guava", "32.1.0-jre", "jar", "")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Error("expected published version to exist")
	}

	ok, err = rc.Exists(context.Background(), "com.google.guava", "guava", "99.0.0", "jar", "")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Error("expected unpublished version to not exist")
	}
}

func TestArtifactURL(t *testing.T) {
	tests := []struct {
		packaging  string
		classifier string
		want       string
	}{
		{"jar", "", "https://repo1.maven.org/maven2/io/netty/netty-buffer/4.1.0/netty-buffer-4.1.0.jar"},
		{"pom", "", "https://repo1.maven.org/maven2/io/netty/netty-buffer/4.1.0/netty-buffer-4.1.0.pom"},
		{"", "", "https://repo1.maven.org/maven2/io/netty/netty-buffer/4.1.0/netty-buffer-4.1.0.jar"},
		{"bundle", "", "https://repo1.maven.org/maven2/io/netty/netty-buffer/4.1.0/netty-buffer-4.1.0.jar"},
		{"jar", "sources", "https://repo1.maven.org/maven2/io/netty/netty-buffer/4.1.0/netty-buffer-4.1.0-sources.jar"},
	}

	for _, tt := range tests {
		got := ArtifactURL(DefaultRepoURL, "io.netty", "netty-buffer", "4.1.0", tt.packaging, tt.classifier)
		if got != tt.want {
			t.Errorf("ArtifactURL(packaging=%q, classifier=%q) = %q, want %q", tt.packaging, tt.classifier, got, tt.want)
		}
	}
}
