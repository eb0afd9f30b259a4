package version

import (
	"errors"
	"strings"
)

// Scope is the component granularity at which "latest" is computed.
type Scope string

const (
	ScopeMajor Scope = "major"
	ScopeMinor Scope = "minor"
	ScopePatch Scope = "patch"
)

// ValidScope reports whether s names a known scope.
func ValidScope(s Scope) bool {
	return s == ScopeMajor || s == ScopeMinor || s == ScopePatch
}

// ErrNoVersions is returned when no usable version remains after filtering.
var ErrNoVersions = errors.New("no usable versions")

// prereleaseHints mirror the index's ad hoc qualifier conventions. A raw
// string is pre-release when one of these appears after its first hyphen.
var prereleaseHints = []string{"alpha", "beta", "rc", "snapshot", "pre"}

// IsPreRelease reports whether a raw version string is a pre-release.
func IsPreRelease(raw string) bool {
	i := strings.Index(raw, "-")
	if i < 0 {
		return false
	}
	rest := strings.ToLower(raw[i+1:])
	for _, h := range prereleaseHints {
		if strings.Contains(rest, h) {
			return true
		}
	}
	return false
}

// Latest returns the overall latest version: the maximum under Compare with
// pre-releases excluded. When only pre-releases exist they are ranked anyway
// rather than failing, so an artifact with no stable release still resolves.
func Latest(entries []Version) (Version, error) {
	if len(entries) == 0 {
		return Version{}, ErrNoVersions
	}
	stable := make([]Version, 0, len(entries))
	for _, e := range entries {
		if !IsPreRelease(e.Raw) {
			stable = append(stable, e)
		}
	}
	if len(stable) == 0 {
		stable = entries
	}
	best := stable[0]
	for _, e := range stable[1:] {
		if Compare(e, best) > 0 {
			best = e
		}
	}
	return best, nil
}

// SelectLatest picks the best version for the requested scope relative to a
// reference version.
//
// Calendar-coded entries form a pool of their own: they carry no
// major/minor/patch structure, so when the reference's first component looks
// like a year (1900-2100) and any calendar entries exist, every scope
// resolves to the most recent date. That year check is a heuristic and will
// misread a legitimate major version in the 1900-2100 range; it is kept for
// compatibility with the versioning conventions seen in the wild. The check
// cuts both ways: a reference outside that range excludes calendar entries
// from every candidate pool, so a coordinate that publishes only dates
// returns ErrNoVersions for a semver reference instead of the newest date.
//
// For ordinary entries the candidate set narrows by scope and widens again
// when empty (patch -> same-minor -> full pool, minor -> full pool),
// returning a best-available answer whenever any version exists at all.
// Pre-releases never participate.
func SelectLatest(entries []Version, scope Scope, ref Version) (Version, error) {
	var pool, dates []Version
	for _, e := range entries {
		if IsPreRelease(e.Raw) {
			continue
		}
		if e.Kind == Calendar {
			dates = append(dates, e)
		} else {
			pool = append(pool, e)
		}
	}

	if len(ref.Components) > 0 && plausibleYear(ref.Components[0]) && len(dates) > 0 {
		best := dates[0]
		for _, d := range dates[1:] {
			if d.DateValue() > best.DateValue() {
				best = d
			}
		}
		return best, nil
	}

	if len(pool) == 0 {
		return Version{}, ErrNoVersions
	}

	switch scope {
	case ScopeMajor:
		return maxBy(pool, Compare), nil

	case ScopeMinor:
		cands := filter(pool, func(v Version) bool { return v.component(0) == ref.component(0) })
		if len(cands) == 0 {
			// Nothing in the reference major: the overall latest is the
			// most useful answer left.
			return maxBy(pool, Compare), nil
		}
		return maxBy(cands, compareMinorPatch), nil

	case ScopePatch:
		cands := filter(pool, func(v Version) bool {
			return v.component(0) == ref.component(0) && v.component(1) == ref.component(1)
		})
		if len(cands) != 0 {
			return maxBy(cands, comparePatch), nil
		}
		cands = filter(pool, func(v Version) bool { return v.component(0) == ref.component(0) })
		if len(cands) != 0 {
			return maxBy(cands, compareMinorPatch), nil
		}
		return maxBy(pool, Compare), nil
	}

	return Version{}, ErrNoVersions
}

// compareMinorPatch ranks by (minor, patch), breaking ties with the full
// order so deeper dotted forms still win.
func compareMinorPatch(a, b Version) int {
	if a.component(1) != b.component(1) {
		if a.component(1) < b.component(1) {
			return -1
		}
		return 1
	}
	if a.component(2) != b.component(2) {
		if a.component(2) < b.component(2) {
			return -1
		}
		return 1
	}
	return Compare(a, b)
}

func comparePatch(a, b Version) int {
	if a.component(2) != b.component(2) {
		if a.component(2) < b.component(2) {
			return -1
		}
		return 1
	}
	return Compare(a, b)
}

func maxBy(vs []Version, cmp func(a, b Version) int) Version {
	best := vs[0]
	for _, v := range vs[1:] {
		if cmp(v, best) > 0 {
			best = v
		}
	}
	return best
}

func filter(vs []Version, keep func(Version) bool) []Version {
	var out []Version
	for _, v := range vs {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
