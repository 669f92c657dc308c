// Package classify partitions the collected inventory into the groups to
// delete and the groups to keep, driven by exclusion patterns.
//
// Matching is exclude-only: a pattern match routes a group to the keep set,
// and there is no inverse "delete only matching" mode.
package classify

import (
	"regexp"
	"strings"

	"github.com/kjourdan1/rgsweep/internal/inventory"
	"github.com/kjourdan1/rgsweep/internal/output"
)

// Partition is the disjoint split of the inventory. Together ToDelete and
// ToKeep cover the full input, each in inventory encounter order.
type Partition struct {
	ToDelete []inventory.Group
	ToKeep   []inventory.Group
}

// matcher is one compiled exclusion pattern. The literal form always
// applies; re is nil when the pattern is not a valid regular expression.
type matcher struct {
	literal string
	re      *regexp.Regexp
}

func compilePatterns(patterns []string) []matcher {
	matchers := make([]matcher, 0, len(patterns))
	for _, p := range patterns {
		m := matcher{literal: p}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			output.Warn("invalid regex pattern, using exact matching only", "pattern", p)
		} else {
			m.re = re
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// matches reports whether a group name is excluded by this pattern:
// case-insensitive exact equality first, then unanchored regex search.
func (m matcher) matches(name string) bool {
	if strings.EqualFold(name, m.literal) {
		return true
	}
	return m.re != nil && m.re.MatchString(name)
}

// Split partitions groups by the exclusion patterns. Any pattern match
// sends a group to ToKeep; no match sends it to ToDelete. Pattern order
// never changes the resulting partition, only which pattern triggers.
func Split(groups []inventory.Group, patterns []string) Partition {
	matchers := compilePatterns(patterns)

	p := Partition{
		ToDelete: make([]inventory.Group, 0, len(groups)),
		ToKeep:   make([]inventory.Group, 0),
	}
	for _, g := range groups {
		if excluded(g.Name, matchers) {
			p.ToKeep = append(p.ToKeep, g)
		} else {
			p.ToDelete = append(p.ToDelete, g)
		}
	}
	return p
}

func excluded(name string, matchers []matcher) bool {
	for _, m := range matchers {
		if m.matches(name) {
			return true
		}
	}
	return false
}
