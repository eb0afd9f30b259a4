package resolve

import (
	"errors"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		dependency string
		packaging  string
		classifier string
		want       Coordinate
		wantErr    bool
	}{
		{
			dependency: "org.apache.commons:commons-lang3",
			want:       Coordinate{GroupID: "org.apache.commons", ArtifactID: "commons-lang3", Packaging: "jar"},
		},
		{
			dependency: "com.google.guava:guava",
			packaging:  "pom",
			classifier: "sources",
			want:       Coordinate{GroupID: "com.google.guava", ArtifactID: "guava", Packaging: "pom", Classifier: "sources"},
		},
		{
			dependency: "pkg:maven/org.apache.commons/commons-lang3",
			want:       Coordinate{GroupID: "org.apache.commons", ArtifactID: "commons-lang3", Packaging: "jar"},
		},
		{dependency: "", wantErr: true},
		{dependency: "no-colon", wantErr: true},
		{dependency: "too:many:colons", wantErr: true},
		{dependency: ":missing-group", wantErr: true},
		{dependency: "missing-artifact:", wantErr: true},
		{dependency: "pkg:npm/leftpad", wantErr: true},
	}

	for _, tt := range tests {
		c, err := ParseCoordinate(tt.dependency, tt.packaging, tt.classifier)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("ParseCoordinate(%q) error = %v, want ErrInvalidCoordinate", tt.dependency, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoordinate(%q) failed: %v", tt.dependency, err)
			continue
		}
		if c != tt.want {
			t.Errorf("ParseCoordinate(%q) = %+v, want %+v", tt.dependency, c, tt.want)
		}
	}
}

func TestCoordinatePURL(t *testing.T) {
	c := Coordinate{GroupID: "com.google.guava", ArtifactID: "guava"}
	if got := c.PURL(""); got != "pkg:maven/com.google.guava/guava" {
		t.Errorf("PURL() = %q", got)
	}
	if got := c.PURL("32.1.0-jre"); got != "pkg:maven/com.google.guava/guava@32.1.0-jre" {
		t.Errorf("PURL(version) = %q", got)
	}
}
