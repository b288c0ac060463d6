// Package main implements the purpleblog static blog generator.
package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/purpleblog/internal/config"
)

func main() {
	cmd := newRootCommand()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		if errors.Is(err, config.ErrMissingRequired) {
			os.Exit(config.ExitUsage)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &buildOptions{}
	root := &cobra.Command{
		Use:   "purpleblog",
		Short: "Static blog generator for folders of Markdown posts",
		Long: `purpleblog converts a directory of Markdown posts into a static HTML blog.

Every child folder of the input directory that contains an index.md becomes
{output}/{folder}/index.html. The site index ({output}/index.html) lists the
visible posts grouped by year, and {output}/posts.json lists them as JSON.

Each index.md starts with a front-matter block:

  ---
  title: My Post
  summary: A short summary.
  published: 2024-03-14
  ---

Posts with "hidden: true" get a page but are left out of the listings.`,
		Example: `purpleblog -i=./posts -o=./public -n="My blog" -d="Thoughts and notes"
purpleblog build --config blog.yaml --post-template post.html
purpleblog serve`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}
	addBuildFlags(root, opts)

	root.AddCommand(newBuildCommand(), newServeCommand())
	return root
}

// legacyFlags maps multi-letter single-dash flags to their long forms.
var legacyFlags = map[string]string{
	"-it": "--index-template",
	"-pt": "--post-template",
}

// normalizeArgs rewrites -it=FILE and -pt=FILE, which pflag cannot parse as
// shorthands, to their long forms.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		long, ok := legacyFlags[name]
		switch {
		case ok && hasValue:
			out = append(out, long+"="+value)
		case ok:
			out = append(out, long)
		default:
			out = append(out, arg)
		}
	}
	return out
}
