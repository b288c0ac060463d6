// Package search finds posts whose source text matches a query.
package search

import (
	"context"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/taigrr/purpleblog/internal/filesystem"
	"github.com/taigrr/purpleblog/internal/types"
)

const (
	defaultContextLines = 2
	defaultLimit        = 15
)

// Service searches the post sources of one input directory.
type Service struct {
	fs *filesystem.Service
}

// New creates a search Service reading through fs.
func New(fs *filesystem.Service) *Service {
	return &Service{fs: fs}
}

// Search scans every post source for lines matching params.Query. Results are
// ordered by folder name. The second return value is the number of matching
// posts before offset and limit are applied.
func (s *Service) Search(ctx context.Context, params types.SearchParams) ([]types.SearchResult, int, error) {
	if strings.TrimSpace(params.Query) == "" {
		return nil, 0, &SearchError{Message: "Search query cannot be empty"}
	}

	pattern, err := compile(params)
	if err != nil {
		return nil, 0, err
	}

	contextLines := params.ContextLines
	if contextLines <= 0 {
		contextLines = defaultContextLines
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset := max(params.Offset, 0)

	sources, err := s.fs.ListPostSources()
	if err != nil {
		return nil, 0, err
	}

	type indexedResult struct {
		idx    int
		result types.SearchResult
	}

	numWorkers := max(min(runtime.NumCPU(), len(sources)), 1)
	resultsCh := make(chan indexedResult, len(sources))
	srcCh := make(chan int, len(sources))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for idx := range srcCh {
				if ctx.Err() != nil {
					continue
				}
				src := sources[idx]
				content, err := s.fs.ReadSource(src)
				if err != nil {
					continue
				}
				if matches := matchLines(content, pattern, contextLines); len(matches) > 0 {
					resultsCh <- indexedResult{idx: idx, result: types.SearchResult{
						Folder:  src.Folder,
						Path:    src.Path,
						Matches: matches,
					}}
				}
			}
		})
	}

	for i := range sources {
		srcCh <- i
	}
	close(srcCh)

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var indexed []indexedResult
	for r := range resultsCh {
		indexed = append(indexed, r)
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	sort.Slice(indexed, func(i, j int) bool {
		return indexed[i].idx < indexed[j].idx
	})

	total := len(indexed)
	if offset >= total {
		return []types.SearchResult{}, total, nil
	}
	end := min(offset+limit, total)

	results := make([]types.SearchResult, 0, end-offset)
	for _, ir := range indexed[offset:end] {
		results = append(results, ir.result)
	}
	return results, total, nil
}

func compile(params types.SearchParams) (*regexp.Regexp, error) {
	expr := params.Query
	if !params.UseRegex {
		expr = regexp.QuoteMeta(expr)
	}
	if !params.CaseSensitive {
		expr = "(?i)" + expr
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, &SearchError{Message: "Invalid regex pattern: " + err.Error()}
	}
	return pattern, nil
}

// matchLines returns every matching line with its surrounding context. Lines
// inside the leading front-matter block are flagged as metadata matches.
func matchLines(content string, pattern *regexp.Regexp, contextLines int) []types.SearchMatch {
	lines := strings.Split(content, "\n")
	metadataEnd := metadataEndLine(lines)

	var matches []types.SearchMatch
	for lineNum, line := range lines {
		if !pattern.MatchString(line) {
			continue
		}
		start := max(lineNum-contextLines, 0)
		end := min(lineNum+contextLines+1, len(lines))
		matches = append(matches, types.SearchMatch{
			Line:       lineNum + 1,
			Context:    strings.Join(lines[start:end], "\n"),
			InMetadata: lineNum > 0 && lineNum < metadataEnd,
		})
	}
	return matches
}

// metadataEndLine returns the index of the closing delimiter line, or 0 when
// the content has no complete front-matter block.
func metadataEndLine(lines []string) int {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i
		}
	}
	return 0
}

// SearchError represents a search error.
type SearchError struct {
	Message string
}

func (e *SearchError) Error() string {
	return e.Message
}
