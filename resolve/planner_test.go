package resolve

import "testing"

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		c         Coordinate
		wantQuery string
		wantPkg   string
	}{
		{
			name:      "plain jar",
			c:         Coordinate{GroupID: "com.google.guava", ArtifactID: "guava", Packaging: "jar"},
			wantQuery: "g:com.google.guava AND a:guava AND p:jar",
			wantPkg:   "jar",
		},
		{
			name:      "empty packaging defaults to jar",
			c:         Coordinate{GroupID: "org.slf4j", ArtifactID: "slf4j-api"},
			wantQuery: "g:org.slf4j AND a:slf4j-api AND p:jar",
			wantPkg:   "jar",
		},
		{
			name:      "classifier appended",
			c:         Coordinate{GroupID: "io.netty", ArtifactID: "netty-transport", Packaging: "jar", Classifier: "linux-x86_64"},
			wantQuery: "g:io.netty AND a:netty-transport AND p:jar AND l:linux-x86_64",
			wantPkg:   "jar",
		},
		{
			name:      "bom forced to pom",
			c:         Coordinate{GroupID: "io.netty", ArtifactID: "netty-bom", Packaging: "jar"},
			wantQuery: "g:io.netty AND a:netty-bom AND p:pom",
			wantPkg:   "pom",
		},
		{
			name:      "dependencies aggregator forced to pom even as war",
			c:         Coordinate{GroupID: "org.springframework.boot", ArtifactID: "spring-boot-dependencies", Packaging: "war"},
			wantQuery: "g:org.springframework.boot AND a:spring-boot-dependencies AND p:pom",
			wantPkg:   "pom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Plan(tt.c)
			if spec.Query != tt.wantQuery {
				t.Errorf("Query = %q, want %q", spec.Query, tt.wantQuery)
			}
			if spec.Packaging != tt.wantPkg {
				t.Errorf("Packaging = %q, want %q", spec.Packaging, tt.wantPkg)
			}
			if spec.Rows != defaultRows {
				t.Errorf("Rows = %d, want %d", spec.Rows, defaultRows)
			}
		})
	}
}

func TestIsAggregator(t *testing.T) {
	tests := []struct {
		artifact string
		want     bool
	}{
		{"spring-boot-dependencies", true},
		{"netty-bom", true},
		{"guava", false},
		{"bombardier", false},
	}
	for _, tt := range tests {
		if got := IsAggregator(tt.artifact); got != tt.want {
			t.Errorf("IsAggregator(%q) = %v, want %v", tt.artifact, got, tt.want)
		}
	}
}
