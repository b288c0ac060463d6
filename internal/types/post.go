// Package types defines all data structures shared across the blog generator.
package types

import "time"

type (
	// BlogPost is a visible post as it appears in the index and posts.json.
	BlogPost struct {
		RelativeURL string    `json:"relativeUrl"`
		Title       string    `json:"title"`
		Summary     string    `json:"summary"`
		PublishDate time.Time `json:"publishDate"`
	}

	// ParsedPost is the result of splitting a post file into front matter and body.
	ParsedPost struct {
		Metadata   map[string]string `json:"metadata"`
		BodyOffset int               `json:"bodyOffset"`
		Body       string            `json:"body"`
	}

	// PostSource locates one post folder in the input directory.
	PostSource struct {
		Folder string `json:"folder"` // folder name, used as the post's relative URL
		Path   string `json:"path"`   // absolute path of the folder's index.md
	}
)
