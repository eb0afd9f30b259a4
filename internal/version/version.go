// Package version parses, orders, and selects Maven artifact version strings.
//
// Maven Central mixes genuine semantic versions with calendar-coded releases
// (20240303), bare build numbers, and partial dotted forms. Refusing to parse
// any of them would make whole artifacts unresolvable, so parsing degrades to
// a best-effort interpretation instead of failing.
package version

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind records which grammar matched a raw version string.
// It is diagnostic only; comparison operates uniformly on components.
type Kind string

const (
	Semver      Kind = "semver"
	Calendar    Kind = "calendar"
	Numeric     Kind = "numeric"
	Partial     Kind = "partial"
	Unparseable Kind = "unparseable"
)

// Version is the parsed, comparable form of a raw version string.
// Components is never empty for any kind except Unparseable. Raw always
// holds the original index-returned string, so callers return the original
// rather than a reconstruction.
type Version struct {
	Kind       Kind
	Components []int
	Pre        string // qualifier after the first hyphen, empty for releases
	Raw        string
}

var semverRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z.\-]+))?(?:\+[0-9A-Za-z.\-]+)?$`)

// Parse converts a raw version string into its typed form. It never fails:
// grammars are attempted in priority order (semver, calendar date, bare
// number, partial dotted) and anything left over is tagged Unparseable.
func Parse(raw string) Version {
	if m := semverRe.FindStringSubmatch(raw); m != nil {
		major, _ := strconv.Atoi(m[1])
		minor, _ := strconv.Atoi(m[2])
		patch, _ := strconv.Atoi(m[3])
		return Version{Kind: Semver, Components: []int{major, minor, patch}, Pre: m[4], Raw: raw}
	}

	if isAllDigits(raw) {
		if len(raw) >= 8 {
			year, _ := strconv.Atoi(raw[:4])
			month, _ := strconv.Atoi(raw[4:6])
			day, _ := strconv.Atoi(raw[6:8])
			if plausibleYear(year) && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
				return Version{Kind: Calendar, Components: []int{year, month, day}, Raw: raw}
			}
		}
		if n, err := strconv.Atoi(raw); err == nil {
			return Version{Kind: Numeric, Components: []int{n, 0, 0}, Raw: raw}
		}
		// Digit strings too long for an int are out of any sane scheme.
		return Version{Kind: Unparseable, Raw: raw}
	}

	if comps, ok := parsePartial(raw); ok {
		return Version{Kind: Partial, Components: comps, Raw: raw}
	}

	return Version{Kind: Unparseable, Raw: raw}
}

// parsePartial handles dot-separated integer forms like "1.2", "3", or
// "1.2.3.1". Missing trailing segments default to zero; extra segments are
// kept so "1.2.3.1" outranks "1.2.3".
func parsePartial(raw string) ([]int, bool) {
	parts := strings.Split(raw, ".")
	comps := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		comps = append(comps, n)
	}
	for len(comps) < 3 {
		comps = append(comps, 0)
	}
	return comps, true
}

// DateValue returns the YYYYMMDD numeric value of a Calendar version,
// or zero for any other kind.
func (v Version) DateValue() int {
	if v.Kind != Calendar || len(v.Components) < 3 {
		return 0
	}
	return v.Components[0]*10000 + v.Components[1]*100 + v.Components[2]
}

// component returns the nth numeric component, or zero past the end.
func (v Version) component(n int) int {
	if n >= len(v.Components) {
		return 0
	}
	return v.Components[n]
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func plausibleYear(n int) bool {
	return n >= 1900 && n <= 2100
}
