package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/purpleblog/internal/types"
)

type (
	// ParseMetadataInput contains the raw text of a post.
	ParseMetadataInput struct {
		Content string `json:"content" jsonschema:"Full text of an index.md, starting with the --- front-matter block"`
	}

	// ParseMetadataOutput contains the parsed front matter.
	ParseMetadataOutput struct {
		Metadata   map[string]string `json:"metadata"`
		BodyOffset int               `json:"bodyOffset"`
		Hidden     bool              `json:"hidden,omitempty"`
	}

	// RenderTemplateInput contains a template and its values.
	RenderTemplateInput struct {
		Template string            `json:"template" jsonschema:"Template text with {{key}} placeholders"`
		Values   map[string]string `json:"values,omitempty" jsonschema:"Placeholder values; 'published' is reformatted as a long date"`
	}

	// RenderTemplateOutput contains the rendered text.
	RenderTemplateOutput struct {
		Output string `json:"output"`
	}

	// RenderPostInput contains the raw text of a post.
	RenderPostInput struct {
		Content string `json:"content" jsonschema:"Full text of an index.md"`
	}

	// RenderPostOutput contains the post page and its metadata.
	RenderPostOutput struct {
		HTML     string            `json:"html"`
		Metadata map[string]string `json:"metadata"`
	}

	// SiteInput overrides the server's configured directories.
	SiteInput struct {
		Input       string `json:"input,omitempty" jsonschema:"Input directory (default: server setting)"`
		Output      string `json:"output,omitempty" jsonschema:"Output directory (default: server setting)"`
		Name        string `json:"name,omitempty" jsonschema:"Blog name (default: server setting)"`
		Description string `json:"description,omitempty" jsonschema:"Blog description (default: server setting)"`
	}

	// BuildSiteOutput summarizes a build.
	BuildSiteOutput struct {
		Output string             `json:"output"`
		Posts  int                `json:"posts"`
		Listed int                `json:"listed"`
		Failed []types.PostResult `json:"failed,omitempty"`
	}

	// ListPostsInput selects the input directory to list.
	ListPostsInput struct {
		Input string `json:"input,omitempty" jsonschema:"Input directory (default: server setting)"`
	}

	// PostListing is one visible post.
	PostListing struct {
		Folder    string `json:"folder"`
		Title     string `json:"title"`
		Summary   string `json:"summary"`
		Published string `json:"published"`
	}

	// YearListing holds the posts of one year, newest first.
	YearListing struct {
		Year  int           `json:"year"`
		Posts []PostListing `json:"posts"`
	}

	// ListPostsOutput contains the visible posts grouped by year.
	ListPostsOutput struct {
		Years  []YearListing      `json:"years"`
		Hidden int                `json:"hidden"`
		Failed []types.PostResult `json:"failed,omitempty"`
	}

	// SearchInput contains parameters for searching posts.
	SearchInput struct {
		Input         string `json:"input,omitempty" jsonschema:"Input directory (default: server setting)"`
		Query         string `json:"query" jsonschema:"Search query (plain text or regex if useRegex=true)"`
		UseRegex      bool   `json:"useRegex,omitempty" jsonschema:"Treat query as regex pattern (default: false)"`
		CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"Case sensitive search (default: false)"`
		ContextLines  int    `json:"contextLines,omitempty" jsonschema:"Lines of context around each match (default: 2)"`
		Offset        int    `json:"offset,omitempty" jsonschema:"Number of posts to skip (default: 0)"`
		Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of posts to return (default: 15)"`
	}

	// SearchOutput contains matching posts.
	SearchOutput struct {
		Results    []types.SearchResult `json:"results"`
		TotalPosts int                  `json:"totalPosts"`
		HasMore    bool                 `json:"hasMore,omitempty"`
	}
)

func registerTools(server *mcp.Server, h *toolHandlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_metadata",
		Description: "Parse the front-matter block of a post. Fails on malformed lines, duplicate or reserved keys, and missing title/summary/published.",
	}, h.handleParseMetadata)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_template",
		Description: "Replace {{key}} placeholders in a template. Unknown placeholders are left untouched.",
	}, h.handleRenderTemplate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_post",
		Description: "Render the full HTML page of a post with the configured post template, without writing anything.",
	}, h.handleRenderPost)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_site",
		Description: "Generate the whole site: one page per post, index.html and posts.json. Failed posts are reported and skipped.",
	}, h.handleBuildSite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_posts",
		Description: "List the visible posts grouped by year, newest first, as they would appear on the index page.",
	}, h.handleListPosts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_posts",
		Description: "Full-text search across post sources. Supports regex and case-insensitive search. Returns matching lines with context.",
	}, h.handleSearch)
}
