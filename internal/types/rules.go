package types

type (
	// MetadataRules lists the front-matter keys a post must and must not set.
	MetadataRules struct {
		Required []string `json:"required" yaml:"required"`
		Reserved []string `json:"reserved" yaml:"reserved"`
	}

	// TemplateContext maps placeholder names to their substitution strings.
	TemplateContext map[string]string

	// PathFilterConfig contains configuration for the post folder filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns" yaml:"ignore"`
	}
)

// DefaultMetadataRules returns a fresh copy of the built-in key sets.
func DefaultMetadataRules() MetadataRules {
	return MetadataRules{
		Required: []string{"title", "summary", "published"},
		Reserved: []string{"blogname", "blogdesc", "content", "stylesheet"},
	}
}
