package resolve

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAlternateRuleMatches(t *testing.T) {
	suffix := AlternateRule{ArtifactSuffix: "-dependencies", TrimSuffix: true}
	exact := AlternateRule{Group: "org.example", Artifact: "example-parent", Substitute: "example-core"}

	if !suffix.Matches(Coordinate{GroupID: "org.springframework.boot", ArtifactID: "spring-boot-dependencies"}) {
		t.Error("suffix rule should match spring-boot-dependencies")
	}
	if suffix.Matches(Coordinate{GroupID: "com.google.guava", ArtifactID: "guava"}) {
		t.Error("suffix rule should not match guava")
	}
	if !exact.Matches(Coordinate{GroupID: "org.example", ArtifactID: "example-parent"}) {
		t.Error("exact rule should match its artifact")
	}
	if exact.Matches(Coordinate{GroupID: "org.other", ArtifactID: "example-parent"}) {
		t.Error("exact rule should respect its group filter")
	}
}

func TestAlternateRulePlan(t *testing.T) {
	// Trimming retries against the sibling primary artifact.
	trim := AlternateRule{ArtifactSuffix: "-dependencies", TrimSuffix: true}
	spec := trim.plan(Coordinate{GroupID: "org.springframework.boot", ArtifactID: "spring-boot-dependencies", Packaging: "jar"})
	if spec.Query != "g:org.springframework.boot AND a:spring-boot AND p:jar" {
		t.Errorf("trimmed query = %q", spec.Query)
	}

	// A packaging override bypasses the aggregator forcing.
	bom := AlternateRule{ArtifactSuffix: "-bom", Packaging: "jar"}
	spec = bom.plan(Coordinate{GroupID: "io.netty", ArtifactID: "netty-bom", Packaging: "pom"})
	if spec.Query != "g:io.netty AND a:netty-bom AND p:jar" {
		t.Errorf("bom query = %q", spec.Query)
	}

	// A substitute replaces the artifact outright.
	sub := AlternateRule{Artifact: "example-parent", Substitute: "example-core"}
	spec = sub.plan(Coordinate{GroupID: "org.example", ArtifactID: "example-parent", Packaging: "jar"})
	if spec.ArtifactID != "example-core" {
		t.Errorf("substituted artifact = %q", spec.ArtifactID)
	}
}

func TestLoadAlternates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alternates.yaml")

	content := `rules:
  - group: org.example
    artifact: example-parent
    substitute: example-core
  - artifact_suffix: "-parent"
    trim_suffix: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadAlternates(path)
	if err != nil {
		t.Fatalf("LoadAlternates failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	if rules[0].Substitute != "example-core" {
		t.Errorf("rule 0 substitute = %q", rules[0].Substitute)
	}
	if !rules[1].TrimSuffix {
		t.Error("rule 1 should trim its suffix")
	}
}

func TestLoadAlternatesRejectsUnmatchedRule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  - substitute: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAlternates(path); err == nil {
		t.Error("expected an error for a rule with no matcher")
	}
}
