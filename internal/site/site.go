// Package site drives a full blog build: posts, index page and posts.json.
package site

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/taigrr/purpleblog/internal/config"
	"github.com/taigrr/purpleblog/internal/filesystem"
	"github.com/taigrr/purpleblog/internal/frontmatter"
	"github.com/taigrr/purpleblog/internal/logging"
	"github.com/taigrr/purpleblog/internal/markdown"
	"github.com/taigrr/purpleblog/internal/pathfilter"
	"github.com/taigrr/purpleblog/internal/postindex"
	"github.com/taigrr/purpleblog/internal/templating"
	"github.com/taigrr/purpleblog/internal/types"
)

// Context keys injected by the builder. Posts may not set them.
const (
	KeyBlogName   = "blogname"
	KeyBlogDesc   = "blogdesc"
	KeyContent    = "content"
	KeyStylesheet = "stylesheet"

	keyTitle     = "title"
	keySummary   = "summary"
	keyPublished = templating.PublishedKey
)

// Builder renders a blog from its configuration.
type Builder struct {
	cfg       config.Config
	templates config.Templates
	logger    *log.Logger
	fs        *filesystem.Service
	parser    *frontmatter.Handler
	engine    *templating.Engine
	converter *markdown.Converter
}

// Option configures a Builder.
type Option func(*Builder)

// WithMetadataRules replaces the required and reserved front-matter keys.
func WithMetadataRules(rules types.MetadataRules) Option {
	return func(b *Builder) {
		b.parser = frontmatter.New(&rules)
	}
}

// WithEngine sets the template engine.
func WithEngine(e *templating.Engine) Option {
	return func(b *Builder) {
		b.engine = e
	}
}

// New creates a Builder. A nil logger discards output.
func New(cfg config.Config, templates config.Templates, logger *log.Logger, opts ...Option) *Builder {
	if logger == nil {
		logger = logging.Discard()
	}
	pf := pathfilter.New(&types.PathFilterConfig{IgnoredPatterns: cfg.Ignore})
	b := &Builder{
		cfg:       cfg,
		templates: templates,
		logger:    logger,
		fs:        filesystem.New(cfg.InputDir, cfg.OutputDir, pf),
		parser:    frontmatter.New(nil),
		engine:    templating.New(),
		converter: markdown.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders every post, then posts.json and the index page. A post that
// fails is logged, reported and left out of the listings; it never stops the
// build. Errors returned here abort the whole build.
func (b *Builder) Build(ctx context.Context) (types.BuildReport, error) {
	report := types.BuildReport{Posts: []types.BlogPost{}}

	sources, err := b.fs.ListPostSources()
	if err != nil {
		return report, err
	}
	b.logger.Debug("found post folders", "count", len(sources), "input", b.fs.InputPath())

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		post, hidden, err := b.buildPost(src)
		result := types.PostResult{
			Folder:  src.Folder,
			Path:    src.Path,
			Success: err == nil,
			Hidden:  hidden,
		}
		if err != nil {
			result.Message = err.Error()
			b.logger.Error(src.Path, "err", err)
		} else {
			b.logger.Info(src.Path, "hidden", hidden)
			if !hidden {
				report.Posts = append(report.Posts, post)
			}
		}
		report.Results = append(report.Results, result)
	}

	jsonPath, err := b.fs.WritePostsJSON(report.Posts)
	if err != nil {
		return report, err
	}
	b.logger.Info("posts listing written", "path", jsonPath)

	indexPath, err := b.writeIndex(report.Posts)
	if err != nil {
		return report, err
	}
	b.logger.Info("index written", "path", indexPath, "posts", len(report.Posts))

	return report, nil
}

// Collect parses the front matter of every post without rendering or writing
// anything. It returns the visible posts and a result for each source.
func (b *Builder) Collect(ctx context.Context) ([]types.BlogPost, []types.PostResult, error) {
	sources, err := b.fs.ListPostSources()
	if err != nil {
		return nil, nil, err
	}

	posts := []types.BlogPost{}
	results := make([]types.PostResult, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return posts, results, err
		}

		result := types.PostResult{Folder: src.Folder, Path: src.Path}
		post, err := b.collectPost(src)
		switch {
		case err != nil:
			result.Message = err.Error()
		case post == nil:
			result.Success = true
			result.Hidden = true
		default:
			result.Success = true
			posts = append(posts, *post)
		}
		results = append(results, result)
	}
	return posts, results, nil
}

func (b *Builder) collectPost(src types.PostSource) (*types.BlogPost, error) {
	content, err := b.fs.ReadSource(src)
	if err != nil {
		return nil, err
	}
	parsed, err := b.parser.Parse(content)
	if err != nil {
		return nil, err
	}
	if frontmatter.IsHidden(parsed.Metadata) {
		return nil, nil
	}
	post, err := b.blogPost(src.Folder, parsed.Metadata)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (b *Builder) blogPost(folder string, metadata map[string]string) (types.BlogPost, error) {
	published, err := b.engine.ParseDate(metadata[keyPublished])
	if err != nil {
		return types.BlogPost{}, err
	}
	return types.BlogPost{
		RelativeURL: folder,
		Title:       metadata[keyTitle],
		Summary:     metadata[keySummary],
		PublishDate: published,
	}, nil
}

// buildPost renders and writes one post page. The returned post is only
// meaningful when hidden is false.
func (b *Builder) buildPost(src types.PostSource) (types.BlogPost, bool, error) {
	content, err := b.fs.ReadSource(src)
	if err != nil {
		return types.BlogPost{}, false, err
	}

	page, parsed, err := b.RenderPost(content)
	if err != nil {
		return types.BlogPost{}, false, err
	}

	hidden := frontmatter.IsHidden(parsed.Metadata)
	var post types.BlogPost
	if !hidden {
		if post, err = b.blogPost(src.Folder, parsed.Metadata); err != nil {
			return types.BlogPost{}, false, err
		}
	}

	if _, err := b.fs.WritePost(src.Folder, page); err != nil {
		return types.BlogPost{}, false, err
	}
	return post, hidden, nil
}

// RenderPost turns the raw text of a post into its final page.
func (b *Builder) RenderPost(content string) (string, types.ParsedPost, error) {
	parsed, err := b.parser.Parse(content)
	if err != nil {
		return "", parsed, err
	}

	body, err := b.converter.Convert(parsed.Body)
	if err != nil {
		return "", parsed, err
	}

	ctx := make(types.TemplateContext, len(parsed.Metadata)+3)
	for k, v := range parsed.Metadata {
		ctx[k] = v
	}
	b.inject(ctx)
	ctx[KeyContent] = body

	page, err := b.engine.Render(b.templates.Post, ctx)
	if err != nil {
		return "", parsed, err
	}
	return page, parsed, nil
}

// RenderIndex wraps the grouped post listing in the index template.
func (b *Builder) RenderIndex(posts []types.BlogPost) (string, error) {
	ctx := types.TemplateContext{
		KeyBlogDesc: b.cfg.BlogDescription,
		KeyContent:  postindex.Build(posts),
	}
	b.inject(ctx)
	return b.engine.Render(b.templates.Index, ctx)
}

func (b *Builder) writeIndex(posts []types.BlogPost) (string, error) {
	page, err := b.RenderIndex(posts)
	if err != nil {
		return "", fmt.Errorf("failed to render index: %w", err)
	}
	return b.fs.WriteIndex(page)
}

func (b *Builder) inject(ctx types.TemplateContext) {
	ctx[KeyBlogName] = b.cfg.BlogName
	if b.cfg.Stylesheet != "" {
		ctx[KeyStylesheet] = b.cfg.Stylesheet
	}
}
