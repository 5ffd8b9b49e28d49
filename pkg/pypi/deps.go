package pypi

import (
	"regexp"
	"strings"
)

var (
	depRE    = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)`)
	markerRE = regexp.MustCompile(`;\s*(.+)`)
	skipRE   = regexp.MustCompile(`extra|dev|test`)
)

// NormalizeName converts a package name to its canonical form.
// Applies lowercase and replaces underscores with hyphens, following PEP 503
// normalization rules used by PyPI.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// DependencyNames extracts normalized direct runtime dependency names from
// a requires_dist list. Requirements guarded by extra, dev, or test markers
// are skipped, version constraints are stripped, and duplicates collapse to
// one entry. Used by the graph renderer; PackageDetail.Dependencies itself
// stays an unfiltered passthrough.
func DependencyNames(requiresDist []string) []string {
	seen := make(map[string]bool)
	var deps []string
	for _, req := range requiresDist {
		if m := markerRE.FindStringSubmatch(req); len(m) > 1 && skipRE.MatchString(m[1]) {
			continue
		}
		if m := depRE.FindStringSubmatch(req); len(m) > 1 {
			dep := NormalizeName(m[1])
			if !seen[dep] {
				seen[dep] = true
				deps = append(deps, dep)
			}
		}
	}
	return deps
}
