// Package filesystem reads post sources and writes the generated site.
package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taigrr/purpleblog/internal/pathfilter"
	"github.com/taigrr/purpleblog/internal/types"
)

const (
	// SourceFileName is the Markdown file expected in every post folder.
	SourceFileName = "index.md"
	// PageFileName is the name of every generated HTML page.
	PageFileName = "index.html"
	// PostsFileName is the machine-readable post listing.
	PostsFileName = "posts.json"

	byteOrderMark = "\uFEFF"
)

// Service provides file system operations for a blog build.
type Service struct {
	inputPath  string
	outputPath string
	pathFilter *pathfilter.PathFilter
}

// New creates a new Service.
func New(inputPath, outputPath string, pf *pathfilter.PathFilter) *Service {
	absIn, _ := filepath.Abs(inputPath)
	absOut, _ := filepath.Abs(outputPath)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{
		inputPath:  absIn,
		outputPath: absOut,
		pathFilter: pf,
	}
}

// ListPostSources returns every allowed child folder of the input directory
// that contains an index.md, sorted by folder name.
func (s *Service) ListPostSources() ([]types.PostSource, error) {
	entries, err := os.ReadDir(s.inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input directory not found: %s", s.inputPath)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", s.inputPath)
		}
		return nil, fmt.Errorf("failed to list input directory: %s - %w", s.inputPath, err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	folders = s.pathFilter.FilterPaths(folders)
	sort.Strings(folders)

	var sources []types.PostSource
	for _, folder := range folders {
		sourcePath := filepath.Join(s.inputPath, folder, SourceFileName)
		info, err := os.Stat(sourcePath)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		sources = append(sources, types.PostSource{
			Folder: folder,
			Path:   sourcePath,
		})
	}

	return sources, nil
}

// ReadSource reads the Markdown text of a post. A leading UTF-8 byte order
// mark is dropped.
func (s *Service) ReadSource(src types.PostSource) (string, error) {
	content, err := os.ReadFile(src.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", src.Path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("permission denied: %s", src.Path)
		}
		return "", fmt.Errorf("failed to read file: %s - %w", src.Path, err)
	}
	return strings.TrimPrefix(string(content), byteOrderMark), nil
}

// ResolveOutput resolves a path relative to the output directory and rejects
// paths that would escape it.
func (s *Service) ResolveOutput(relativePath string) (string, error) {
	normalizedPath := strings.TrimPrefix(strings.TrimSpace(relativePath), "/")

	absPath, err := filepath.Abs(filepath.Join(s.outputPath, normalizedPath))
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(s.outputPath, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// WritePost writes the rendered page of the post in folder.
func (s *Service) WritePost(folder, html string) (string, error) {
	if folder == "" || folder == "." {
		return "", fmt.Errorf("invalid post folder: %q", folder)
	}
	return s.writeFile(filepath.Join(folder, PageFileName), []byte(html))
}

// WriteIndex writes the site index page.
func (s *Service) WriteIndex(html string) (string, error) {
	return s.writeFile(PageFileName, []byte(html))
}

// WritePostsJSON writes posts, in the given order, as a JSON array.
func (s *Service) WritePostsJSON(posts []types.BlogPost) (string, error) {
	if posts == nil {
		posts = []types.BlogPost{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return "", fmt.Errorf("failed to encode posts: %w", err)
	}
	return s.writeFile(PostsFileName, data)
}

func (s *Service) writeFile(relativePath string, data []byte) (string, error) {
	fullPath, err := s.ResolveOutput(relativePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %s - %w", relativePath, err)
	}

	return fullPath, nil
}

// InputPath returns the absolute input directory.
func (s *Service) InputPath() string {
	return s.inputPath
}

// OutputPath returns the absolute output directory.
func (s *Service) OutputPath() string {
	return s.outputPath
}
