package main

import (
	"slices"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "legacy template flags",
			args: []string{"-i=posts", "-it=index.html", "-pt=post.html"},
			want: []string{"-i=posts", "--index-template=index.html", "--post-template=post.html"},
		},
		{
			name: "legacy flag without value",
			args: []string{"-pt", "post.html"},
			want: []string{"--post-template", "post.html"},
		},
		{
			name: "values containing equals",
			args: []string{"-it=a=b.html", "-n=x=y"},
			want: []string{"--index-template=a=b.html", "-n=x=y"},
		},
		{
			name: "long flags untouched",
			args: []string{"build", "--index-template=index.html"},
			want: []string{"build", "--index-template=index.html"},
		},
		{
			name: "empty",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(tt.args)
			if !slices.Equal(got, tt.want) {
				t.Errorf("normalizeArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRootCommand_ParsesBuildFlags(t *testing.T) {
	cmd := newRootCommand()
	args := normalizeArgs([]string{"-i=posts", "-o=public", "-n=My blog", "-d=Notes", "-it=idx.html", "--ignore=drafts,wip"})
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	checks := map[string]string{
		"input":          "posts",
		"output":         "public",
		"name":           "My blog",
		"desc":           "Notes",
		"index-template": "idx.html",
		"ignore":         "[drafts,wip]",
	}
	for name, want := range checks {
		if got := cmd.Flags().Lookup(name).Value.String(); got != want {
			t.Errorf("flag %s = %q, want %q", name, got, want)
		}
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"build", "serve"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("Find(%q) = %v, %v; want %s command", name, sub, err, name)
		}
	}
}
