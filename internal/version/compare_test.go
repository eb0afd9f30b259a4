package version

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign only
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.10.0", "1.9.0", 1},
		// Deeper dotted forms outrank their prefix
		{"1.2.3.1", "1.2.3", 1},
		{"1.2.3", "1.2.3.1", -1},
		// Partial forms are zero-padded
		{"1.2", "1.2.0", 0},
		{"3", "3.0.0", 0},
		// Releases outrank pre-releases of the same components
		{"2.0.0", "2.0.0-rc1", 1},
		{"2.0.0-rc1", "2.0.0", -1},
		// Pre-release markers lose to other qualifiers
		{"2.0.0-rc1", "2.0.0-Final", -1},
		{"2.0.0-alpha", "2.0.0-beta", -1},
		{"2.0.0-snapshot", "2.0.0-jre", -1},
		// Calendar dates order chronologically
		{"20240303", "20231211", 1},
		{"19991231", "20000101", -1},
		// Unparseable ranks below everything parseable
		{"final", "0.0.1", -1},
		{"final", "unknown", 0},
	}

	for _, tt := range tests {
		got := sign(Compare(Parse(tt.a), Parse(tt.b)))
		if got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		// Antisymmetry
		if rev := sign(Compare(Parse(tt.b), Parse(tt.a))); rev != -tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, rev, -tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestSortDescending(t *testing.T) {
	raws := []string{"1.2.3", "2.0.0-rc1", "2.0.0", "1.2.3.1", "garbage", "20240303"}
	sorted := SortDescending(ParseAll(raws))

	want := []string{"20240303", "2.0.0", "2.0.0-rc1", "1.2.3.1", "1.2.3", "garbage"}
	for i, v := range sorted {
		if v.Raw != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, v.Raw, want[i])
		}
	}

	// Input untouched
	if raws[0] != "1.2.3" {
		t.Error("SortDescending modified its input")
	}
}
