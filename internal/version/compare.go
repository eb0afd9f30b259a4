package version

import (
	"regexp"
	"sort"
	"strings"
)

// preMarkers are qualifiers that rank below any other qualifier at the same
// position: pre-release markers lose to release markers like "RELEASE" or
// "Final". A trailing number ("rc1", "M2") still counts as the marker.
var preMarkerRe = regexp.MustCompile(`^(alpha|beta|rc|snapshot|m)[.\-_]?\d*$`)

// Compare imposes a total order on parsed versions: negative when a < b,
// zero when equal, positive when a > b.
//
// Numeric components are compared pairwise; on a shared-prefix tie the
// version with more components ranks higher (1.2.3.1 > 1.2.3). A release
// outranks any pre-release of the same components. Unparseable versions rank
// below every parseable one and equal to each other, so they can never win a
// selection that contains anything parseable.
func Compare(a, b Version) int {
	aBad, bBad := a.Kind == Unparseable, b.Kind == Unparseable
	switch {
	case aBad && bBad:
		return 0
	case aBad:
		return -1
	case bBad:
		return 1
	}

	n := len(a.Components)
	if len(b.Components) < n {
		n = len(b.Components)
	}
	for i := 0; i < n; i++ {
		if a.Components[i] != b.Components[i] {
			if a.Components[i] < b.Components[i] {
				return -1
			}
			return 1
		}
	}
	if len(a.Components) != len(b.Components) {
		if len(a.Components) < len(b.Components) {
			return -1
		}
		return 1
	}

	switch {
	case a.Pre == "" && b.Pre == "":
		return 0
	case a.Pre == "":
		return 1
	case b.Pre == "":
		return -1
	}
	return compareQualifiers(a.Pre, b.Pre)
}

func compareQualifiers(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return 0
	}
	ma, mb := preMarkerRe.MatchString(la), preMarkerRe.MatchString(lb)
	if ma != mb {
		if ma {
			return -1
		}
		return 1
	}
	if la < lb {
		return -1
	}
	return 1
}

// SortDescending sorts a copy of versions latest-first and returns it.
// The input slice is not modified.
func SortDescending(versions []Version) []Version {
	out := make([]Version, len(versions))
	copy(out, versions)
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) > 0
	})
	return out
}

// ParseAll parses every raw string, preserving input order.
func ParseAll(raws []string) []Version {
	out := make([]Version, 0, len(raws))
	for _, r := range raws {
		out = append(out, Parse(r))
	}
	return out
}
