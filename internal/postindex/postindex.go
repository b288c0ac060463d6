// Package postindex builds the year-grouped post listing for the site index.
package postindex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taigrr/purpleblog/internal/types"
)

// ShortDateLayout renders a post date as month/day without padding, e.g. 3/14.
const ShortDateLayout = "1/2"

// YearGroup holds the posts published in one calendar year, newest first.
type YearGroup struct {
	Year  int
	Posts []types.BlogPost
}

// Group orders posts newest first and splits them by publication year.
// Posts sharing a timestamp keep their input order. posts is not modified.
func Group(posts []types.BlogPost) []YearGroup {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b types.BlogPost) int {
		return b.PublishDate.Compare(a.PublishDate)
	})

	var groups []YearGroup
	for _, post := range sorted {
		year := post.PublishDate.Year()
		if n := len(groups); n == 0 || groups[n-1].Year != year {
			groups = append(groups, YearGroup{Year: year})
		}
		last := &groups[len(groups)-1]
		last.Posts = append(last.Posts, post)
	}
	return groups
}

// Years returns the distinct publication years, most recent first.
func Years(posts []types.BlogPost) []int {
	groups := Group(posts)
	years := make([]int, len(groups))
	for i, g := range groups {
		years[i] = g.Year
	}
	return years
}

// Build renders the grouped listing as an HTML fragment for the index template.
func Build(posts []types.BlogPost) string {
	var sb strings.Builder
	for _, group := range Group(posts) {
		fmt.Fprintf(&sb, "<h2>%d</h2>", group.Year)
		for _, post := range group.Posts {
			fmt.Fprintf(&sb, `<p><a href="%s/">%s</a> <span>%s</span><div class="summary">%s</div></p>`,
				post.RelativeURL, post.Title, post.PublishDate.Format(ShortDateLayout), post.Summary)
		}
	}
	return sb.String()
}
