package search

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/purpleblog/internal/filesystem"
	"github.com/taigrr/purpleblog/internal/types"
)

func setupTestBlog(t *testing.T, posts map[string]string) *Service {
	t.Helper()
	tmpDir := t.TempDir()
	for folder, content := range posts {
		dir := filepath.Join(tmpDir, folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("Failed to create post dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, filesystem.SourceFileName), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write post: %v", err)
		}
	}
	return New(filesystem.New(tmpDir, t.TempDir(), nil))
}

const samplePost = "---\ntitle: Gophers\nsummary: About gophers\npublished: 2024-01-02\n---\n# Heading\n\nGophers dig tunnels.\n"

func TestService_Search(t *testing.T) {
	t.Run("finds matching posts", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{
			"a": samplePost,
			"b": "---\ntitle: Other\n---\nNothing here.\n",
			"c": "---\ntitle: More\n---\nMore gophers.\n",
		})

		results, total, err := svc.Search(context.Background(), types.SearchParams{Query: "gophers"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if total != 2 {
			t.Errorf("Search() total = %d, want 2", total)
		}
		if len(results) != 2 || results[0].Folder != "a" || results[1].Folder != "c" {
			t.Errorf("Search() results = %+v, want folders a and c", results)
		}
	})

	t.Run("case sensitive when specified", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{"a": samplePost})

		results, _, err := svc.Search(context.Background(), types.SearchParams{
			Query:         "GOPHERS",
			CaseSensitive: true,
		})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Search() returned %d results, want 0", len(results))
		}
	})

	t.Run("literal query escapes regex", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{"a": "---\ntitle: x\n---\nprice: $5 (approx)\n"})

		results, _, err := svc.Search(context.Background(), types.SearchParams{Query: "$5 (approx)"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 1 {
			t.Errorf("Search() returned %d results, want 1", len(results))
		}
	})

	t.Run("regex search", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{"a": samplePost})

		results, _, err := svc.Search(context.Background(), types.SearchParams{
			Query:    `published: \d{4}`,
			UseRegex: true,
		})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 1 || len(results[0].Matches) != 1 {
			t.Fatalf("Search() results = %+v, want one match", results)
		}
		if results[0].Matches[0].Line != 4 {
			t.Errorf("match line = %d, want 4", results[0].Matches[0].Line)
		}
	})

	t.Run("flags metadata matches", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{"a": samplePost})

		results, _, err := svc.Search(context.Background(), types.SearchParams{Query: "gophers"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Search() returned %d results, want 1", len(results))
		}
		matches := results[0].Matches
		if len(matches) != 3 {
			t.Fatalf("got %d matches, want 3", len(matches))
		}
		want := []bool{true, true, false}
		for i, m := range matches {
			if m.InMetadata != want[i] {
				t.Errorf("match %d (line %d) InMetadata = %v, want %v", i, m.Line, m.InMetadata, want[i])
			}
		}
	})

	t.Run("returns context lines", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{"a": "---\ntitle: x\n---\none\ntwo\nthree\nfour\nfive\n"})

		results, _, err := svc.Search(context.Background(), types.SearchParams{
			Query:        "three",
			ContextLines: 1,
		})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Search() returned %d results, want 1", len(results))
		}
		if got, want := results[0].Matches[0].Context, "two\nthree\nfour"; got != want {
			t.Errorf("Context = %q, want %q", got, want)
		}
	})

	t.Run("pagination with offset", func(t *testing.T) {
		posts := map[string]string{}
		for _, folder := range []string{"p1", "p2", "p3", "p4", "p5"} {
			posts[folder] = "---\ntitle: x\n---\nkeyword\n"
		}
		svc := setupTestBlog(t, posts)

		results, total, err := svc.Search(context.Background(), types.SearchParams{
			Query:  "keyword",
			Offset: 2,
			Limit:  2,
		})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if total != 5 {
			t.Errorf("total = %d, want 5", total)
		}
		if len(results) != 2 || results[0].Folder != "p3" || results[1].Folder != "p4" {
			t.Errorf("Search() results = %+v, want p3 and p4", results)
		}

		results, _, err = svc.Search(context.Background(), types.SearchParams{
			Query:  "keyword",
			Offset: 10,
		})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Search() past end returned %d results, want 0", len(results))
		}
	})

	t.Run("empty query returns error", func(t *testing.T) {
		svc := setupTestBlog(t, nil)

		_, _, err := svc.Search(context.Background(), types.SearchParams{Query: "   "})
		var searchErr *SearchError
		if !errors.As(err, &searchErr) {
			t.Errorf("Search() error = %v, want *SearchError", err)
		}
	})

	t.Run("invalid regex returns error", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{"a": samplePost})

		_, _, err := svc.Search(context.Background(), types.SearchParams{
			Query:    "[invalid",
			UseRegex: true,
		})
		if err == nil {
			t.Error("Search() with invalid regex should return error")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		svc := setupTestBlog(t, map[string]string{"a": samplePost})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := svc.Search(ctx, types.SearchParams{Query: "gophers"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Search() error = %v, want context.Canceled", err)
		}
	})
}
