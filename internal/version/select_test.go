package version

import (
	"errors"
	"testing"
)

func TestIsPreRelease(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1.2.3", false},
		{"2.0.0-rc1", true},
		{"2.0.0-RC1", true},
		{"2.0.0-alpha.1", true},
		{"1.0-SNAPSHOT", true},
		{"3.1.0-preview2", true},
		{"32.1.0-jre", false},
		{"5.0.0-Final", false},
		// Hint before the first hyphen does not count
		{"alpha", false},
	}

	for _, tt := range tests {
		if got := IsPreRelease(tt.raw); got != tt.want {
			t.Errorf("IsPreRelease(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name string
		raws []string
		want string
	}{
		{"simple", []string{"1.2.3", "1.10.0", "1.9.9"}, "1.10.0"},
		{"prereleases excluded", []string{"2.0.0-rc1", "1.9.0", "2.0.0-beta"}, "1.9.0"},
		{"only prereleases still resolve", []string{"2.0.0-rc1", "2.0.0-rc2"}, "2.0.0-rc2"},
		{"mixed grammars", []string{"1.2.3", "20240303", "42"}, "20240303"},
		{"unparseable never wins", []string{"garbage", "0.0.1"}, "0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Latest(ParseAll(tt.raws))
			if err != nil {
				t.Fatalf("Latest failed: %v", err)
			}
			if got.Raw != tt.want {
				t.Errorf("Latest(%v) = %q, want %q", tt.raws, got.Raw, tt.want)
			}
		})
	}

	if _, err := Latest(nil); !errors.Is(err, ErrNoVersions) {
		t.Errorf("Latest(nil) error = %v, want ErrNoVersions", err)
	}
}

func TestSelectLatest(t *testing.T) {
	pool := []string{
		"1.0.0", "1.1.0", "1.1.5", "1.2.0", "1.2.9", "1.2.9.1",
		"2.0.0", "2.3.0", "2.3.7",
		"3.0.0-rc1",
	}

	tests := []struct {
		name  string
		scope Scope
		ref   string
		want  string
	}{
		{"major ignores reference", ScopeMajor, "1.0.0", "2.3.7"},
		{"minor within reference major", ScopeMinor, "1.0.0", "1.2.9.1"},
		{"patch within reference minor", ScopePatch, "1.1.0", "1.1.5"},
		{"deeper dotted form wins patch", ScopePatch, "1.2.0", "1.2.9.1"},
		{"patch falls back to same major", ScopePatch, "1.7.0", "1.2.9.1"},
		{"patch falls back to pool", ScopePatch, "9.0.0", "2.3.7"},
		{"minor falls back to pool", ScopeMinor, "9.0.0", "2.3.7"},
		{"prerelease never selected", ScopeMajor, "3.0.0", "2.3.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectLatest(ParseAll(pool), tt.scope, Parse(tt.ref))
			if err != nil {
				t.Fatalf("SelectLatest failed: %v", err)
			}
			if got.Raw != tt.want {
				t.Errorf("SelectLatest(%s, ref %s) = %q, want %q", tt.scope, tt.ref, got.Raw, tt.want)
			}
		})
	}
}

func TestSelectLatestCalendarPool(t *testing.T) {
	entries := ParseAll([]string{"20230101", "20240303", "20231211", "1.2.3"})

	// A date-shaped reference resolves every scope to the most recent date.
	for _, scope := range []Scope{ScopeMajor, ScopeMinor, ScopePatch} {
		got, err := SelectLatest(entries, scope, Parse("20230101"))
		if err != nil {
			t.Fatalf("scope %s: %v", scope, err)
		}
		if got.Raw != "20240303" {
			t.Errorf("scope %s: got %q, want 20240303", scope, got.Raw)
		}
	}

	// A semver reference ignores the calendar entries.
	got, err := SelectLatest(entries, ScopeMajor, Parse("1.0.0"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Raw != "1.2.3" {
		t.Errorf("semver reference: got %q, want 1.2.3", got.Raw)
	}
}

func TestSelectLatestCalendarOnlyPoolNonDateReference(t *testing.T) {
	entries := ParseAll([]string{"20230101", "20240303"})

	_, err := SelectLatest(entries, ScopeMajor, Parse("1.0.0"))
	if !errors.Is(err, ErrNoVersions) {
		t.Errorf("error = %v, want ErrNoVersions for a non-date reference over a date-only pool", err)
	}
}

func TestSelectLatestEmpty(t *testing.T) {
	_, err := SelectLatest(ParseAll([]string{"2.0.0-rc1"}), ScopeMajor, Parse("1.0.0"))
	if !errors.Is(err, ErrNoVersions) {
		t.Errorf("error = %v, want ErrNoVersions", err)
	}
}
