// Package pathfilter decides which folders of the input directory hold posts.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/purpleblog/internal/types"
)

// PathFilter filters post folder names.
type PathFilter struct {
	ignoredPatterns []*regexp.Regexp
}

// DefaultIgnoredPatterns are never treated as post folders. Anything else
// has to be excluded through PathFilterConfig.
var DefaultIgnoredPatterns = []string{
	".git",
}

// New creates a new PathFilter with the given configuration.
func New(config *types.PathFilterConfig) *PathFilter {
	patterns := append([]string{}, DefaultIgnoredPatterns...)
	if config != nil {
		patterns = append(patterns, config.IgnoredPatterns...)
	}

	pf := &PathFilter{}
	for _, pattern := range patterns {
		if re, err := globToRegexp(pattern); err == nil {
			pf.ignoredPatterns = append(pf.ignoredPatterns, re)
		}
	}
	return pf
}

// globToRegexp converts a glob pattern to an anchored regex.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	regexPattern := regexp.QuoteMeta(normalizedPattern)

	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	return regexp.Compile("^" + regexPattern + "$")
}

// IsAllowed reports whether the folder name may hold a post.
func (pf *PathFilter) IsAllowed(name string) bool {
	normalized := strings.Trim(strings.ReplaceAll(name, "\\", "/"), "/")
	if normalized == "" {
		return false
	}

	for _, re := range pf.ignoredPatterns {
		if re.MatchString(normalized) {
			return false
		}
	}
	return true
}

// FilterPaths filters a slice of folder names to only include allowed ones.
func (pf *PathFilter) FilterPaths(names []string) []string {
	var allowed []string
	for _, name := range names {
		if pf.IsAllowed(name) {
			allowed = append(allowed, name)
		}
	}
	return allowed
}
