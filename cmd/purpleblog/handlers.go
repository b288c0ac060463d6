package main

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/purpleblog/internal/config"
	"github.com/taigrr/purpleblog/internal/filesystem"
	"github.com/taigrr/purpleblog/internal/frontmatter"
	"github.com/taigrr/purpleblog/internal/pathfilter"
	"github.com/taigrr/purpleblog/internal/postindex"
	"github.com/taigrr/purpleblog/internal/search"
	"github.com/taigrr/purpleblog/internal/site"
	"github.com/taigrr/purpleblog/internal/templating"
	"github.com/taigrr/purpleblog/internal/types"
)

var errNoInput = errors.New("no input directory: pass 'input' or start the server with -i")

// toolHandlers serves the MCP tools against a base configuration.
type toolHandlers struct {
	base   config.Config
	logger *log.Logger
	parser *frontmatter.Handler
	engine *templating.Engine
}

func newToolHandlers(base config.Config, logger *log.Logger) *toolHandlers {
	return &toolHandlers{
		base:   base,
		logger: logger,
		parser: frontmatter.New(nil),
		engine: templating.New(),
	}
}

func (h *toolHandlers) handleParseMetadata(ctx context.Context, req *mcp.CallToolRequest, input ParseMetadataInput) (*mcp.CallToolResult, ParseMetadataOutput, error) {
	parsed, err := h.parser.Parse(input.Content)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ParseMetadataOutput{}, err
	}
	return nil, ParseMetadataOutput{
		Metadata:   parsed.Metadata,
		BodyOffset: parsed.BodyOffset,
		Hidden:     frontmatter.IsHidden(parsed.Metadata),
	}, nil
}

func (h *toolHandlers) handleRenderTemplate(ctx context.Context, req *mcp.CallToolRequest, input RenderTemplateInput) (*mcp.CallToolResult, RenderTemplateOutput, error) {
	out, err := h.engine.Render(input.Template, types.TemplateContext(input.Values))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RenderTemplateOutput{}, err
	}
	return nil, RenderTemplateOutput{Output: out}, nil
}

func (h *toolHandlers) handleRenderPost(ctx context.Context, req *mcp.CallToolRequest, input RenderPostInput) (*mcp.CallToolResult, RenderPostOutput, error) {
	page, parsed, err := h.builder(h.base).RenderPost(input.Content)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RenderPostOutput{}, err
	}
	return nil, RenderPostOutput{HTML: page, Metadata: parsed.Metadata}, nil
}

func (h *toolHandlers) handleBuildSite(ctx context.Context, req *mcp.CallToolRequest, input SiteInput) (*mcp.CallToolResult, BuildSiteOutput, error) {
	cfg := h.base.Merge(config.Config{
		InputDir:        strings.TrimSpace(input.Input),
		OutputDir:       strings.TrimSpace(input.Output),
		BlogName:        input.Name,
		BlogDescription: input.Description,
	})
	if err := cfg.Validate(); err != nil {
		return &mcp.CallToolResult{IsError: true}, BuildSiteOutput{}, err
	}

	report, err := h.builder(cfg).Build(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, BuildSiteOutput{}, err
	}
	return nil, BuildSiteOutput{
		Output: cfg.OutputDir,
		Posts:  len(report.Results),
		Listed: len(report.Posts),
		Failed: report.Failed(),
	}, nil
}

func (h *toolHandlers) handleListPosts(ctx context.Context, req *mcp.CallToolRequest, input ListPostsInput) (*mcp.CallToolResult, ListPostsOutput, error) {
	cfg, err := h.withInput(input.Input)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListPostsOutput{}, err
	}

	posts, results, err := h.builder(cfg).Collect(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListPostsOutput{}, err
	}

	out := ListPostsOutput{Years: []YearListing{}}
	for _, group := range postindex.Group(posts) {
		year := YearListing{Year: group.Year}
		for _, p := range group.Posts {
			year.Posts = append(year.Posts, PostListing{
				Folder:    p.RelativeURL,
				Title:     p.Title,
				Summary:   p.Summary,
				Published: p.PublishDate.Format(templating.DefaultDateLayout),
			})
		}
		out.Years = append(out.Years, year)
	}
	for _, r := range results {
		switch {
		case !r.Success:
			out.Failed = append(out.Failed, r)
		case r.Hidden:
			out.Hidden++
		}
	}
	return nil, out, nil
}

func (h *toolHandlers) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	cfg, err := h.withInput(input.Input)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, err
	}

	pf := pathfilter.New(&types.PathFilterConfig{IgnoredPatterns: cfg.Ignore})
	svc := search.New(filesystem.New(cfg.InputDir, cfg.OutputDir, pf))
	results, total, err := svc.Search(ctx, types.SearchParams{
		Query:         input.Query,
		UseRegex:      input.UseRegex,
		CaseSensitive: input.CaseSensitive,
		ContextLines:  input.ContextLines,
		Offset:        input.Offset,
		Limit:         input.Limit,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, err
	}

	return nil, SearchOutput{
		Results:    results,
		TotalPosts: total,
		HasMore:    max(input.Offset, 0)+len(results) < total,
	}, nil
}

// withInput returns the base config with its input directory replaced when
// input is set.
func (h *toolHandlers) withInput(input string) (config.Config, error) {
	cfg := h.base.Merge(config.Config{InputDir: strings.TrimSpace(input)})
	if strings.TrimSpace(cfg.InputDir) == "" {
		return cfg, errNoInput
	}
	return cfg, nil
}

func (h *toolHandlers) builder(cfg config.Config) *site.Builder {
	return site.New(cfg, cfg.LoadTemplates(h.logger), h.logger, site.WithEngine(h.engine))
}
