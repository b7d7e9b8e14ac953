package model

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// AnySelector matches every version.
const AnySelector = "*"

var packageNamePattern = regexp.MustCompile(`^(@[A-Za-z0-9][A-Za-z0-9._-]*/)?[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidName reports whether name is a package name: one path segment
// starting with a letter or digit, optionally under an @scope. A valid name
// joined to a packages root always stays inside it.
func ValidName(name string) bool {
	return packageNamePattern.MatchString(name)
}

// Ref is a package name with an optional version selector, as in foo@^1.2.
type Ref struct {
	Name     string
	Selector string
}

// ParseRef splits name@selector. A leading @ is part of the name.
func ParseRef(s string) Ref {
	s = strings.TrimSpace(s)

	idx := strings.LastIndex(s, "@")
	if idx <= 0 {
		return Ref{Name: s}
	}

	return Ref{Name: s[:idx], Selector: strings.TrimSpace(s[idx+1:])}
}

// String joins the name and selector back together.
func (r Ref) String() string {
	if r.Selector == "" {
		return r.Name
	}

	return r.Name + "@" + r.Selector
}

// Matches reports whether version satisfies the selector. An empty selector,
// "*" and "latest" match anything. Selectors that are not semver constraints
// must equal the version exactly.
func (r Ref) Matches(version string) bool {
	return MatchSelector(r.Selector, version)
}

// MatchSelector reports whether version satisfies selector.
func MatchSelector(selector, version string) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" || selector == AnySelector || selector == "latest" {
		return true
	}

	constraint, err := semver.NewConstraint(selector)
	if err != nil {
		return selector == version
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return selector == version
	}

	return constraint.Check(v)
}
