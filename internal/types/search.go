package types

type (
	// SearchParams selects posts whose source matches a query.
	SearchParams struct {
		Query         string
		UseRegex      bool
		CaseSensitive bool
		ContextLines  int
		Offset        int
		Limit         int
	}

	// SearchMatch is one matching line of a post source.
	SearchMatch struct {
		Line       int    `json:"line"`
		Context    string `json:"context"`
		InMetadata bool   `json:"inMetadata,omitempty"`
	}

	// SearchResult groups the matches found in one post.
	SearchResult struct {
		Folder  string        `json:"folder"`
		Path    string        `json:"path"`
		Matches []SearchMatch `json:"matches"`
	}
)
