package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/taigrr/purpleblog/internal/templating"
)

type recordingWarner struct {
	messages []string
}

func (r *recordingWarner) Warn(msg any, keyvals ...any) {
	r.messages = append(r.messages, fmt.Sprint(msg))
}

func validConfig() Config {
	return Config{
		InputDir:        "posts",
		OutputDir:       "public",
		BlogName:        "Purple",
		BlogDescription: "Notes",
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		flag   string
	}{
		{"missing input", func(c *Config) { c.InputDir = "" }, "-i"},
		{"missing output", func(c *Config) { c.OutputDir = "" }, "-o"},
		{"blank name", func(c *Config) { c.BlogName = "   " }, "-n"},
		{"missing description", func(c *Config) { c.BlogDescription = "" }, "-d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrMissingRequired) {
				t.Fatalf("Validate() error = %v, want %v", err, ErrMissingRequired)
			}
			if !strings.Contains(err.Error(), tt.flag) {
				t.Errorf("Validate() error = %q, should mention %s", err.Error(), tt.flag)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") error = %v", err)
		}
		if cfg.InputDir != "" {
			t.Errorf("InputDir = %q, want empty", cfg.InputDir)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blog.yaml")
		content := `input: posts
output: public
name: Purple Blog
description: Thoughts and notes
stylesheet: /style.css
ignore:
  - drafts
  - "tmp*"
`
		os.WriteFile(path, []byte(content), 0o644)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.BlogName != "Purple Blog" || cfg.BlogDescription != "Thoughts and notes" {
			t.Errorf("name/description = %q/%q", cfg.BlogName, cfg.BlogDescription)
		}
		if cfg.Stylesheet != "/style.css" {
			t.Errorf("Stylesheet = %q, want /style.css", cfg.Stylesheet)
		}
		if !slices.Equal(cfg.Ignore, []string{"drafts", "tmp*"}) {
			t.Errorf("Ignore = %v, want [drafts tmp*]", cfg.Ignore)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		os.WriteFile(path, []byte("name: [unclosed"), 0o644)

		if _, err := Load(path); err == nil {
			t.Error("Load() error = nil, want parse error")
		}
	})
}

func TestConfig_Merge(t *testing.T) {
	base := Config{
		InputDir:   "posts",
		OutputDir:  "public",
		BlogName:   "From File",
		Stylesheet: "style.css",
		Ignore:     []string{"drafts"},
	}

	merged := base.Merge(Config{
		BlogName:        "From Flag",
		BlogDescription: "Desc",
		Ignore:          []string{"tmp"},
	})

	if merged.BlogName != "From Flag" {
		t.Errorf("BlogName = %q, want From Flag", merged.BlogName)
	}
	if merged.InputDir != "posts" || merged.Stylesheet != "style.css" {
		t.Errorf("unset override fields should keep base values, got %+v", merged)
	}
	if merged.BlogDescription != "Desc" {
		t.Errorf("BlogDescription = %q, want Desc", merged.BlogDescription)
	}
	if !slices.Equal(merged.Ignore, []string{"drafts", "tmp"}) {
		t.Errorf("Ignore = %v, want [drafts tmp]", merged.Ignore)
	}
	if !slices.Equal(base.Ignore, []string{"drafts"}) {
		t.Errorf("base.Ignore modified to %v", base.Ignore)
	}
}

func TestConfig_LoadTemplates(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		w := &recordingWarner{}
		tmpl := validConfig().LoadTemplates(w)

		if tmpl.Index != templating.DefaultIndexTemplate || tmpl.Post != templating.DefaultPostTemplate {
			t.Error("LoadTemplates() should return built-in templates")
		}
		if len(w.messages) != 0 {
			t.Errorf("warnings = %v, want none", w.messages)
		}
	})

	t.Run("reads files", func(t *testing.T) {
		dir := t.TempDir()
		cfg := validConfig()
		cfg.IndexTemplatePath = filepath.Join(dir, "index.html")
		cfg.PostTemplatePath = filepath.Join(dir, "post.html")
		os.WriteFile(cfg.IndexTemplatePath, []byte("<i>{{content}}</i>"), 0o644)
		os.WriteFile(cfg.PostTemplatePath, []byte("<p>{{content}}</p>"), 0o644)

		tmpl := cfg.LoadTemplates(nil)
		if tmpl.Index != "<i>{{content}}</i>" || tmpl.Post != "<p>{{content}}</p>" {
			t.Errorf("LoadTemplates() = %+v", tmpl)
		}
	})

	t.Run("falls back with warning", func(t *testing.T) {
		w := &recordingWarner{}
		cfg := validConfig()
		cfg.PostTemplatePath = filepath.Join(t.TempDir(), "missing.html")

		tmpl := cfg.LoadTemplates(w)
		if tmpl.Post != templating.DefaultPostTemplate {
			t.Error("Post template should fall back to the built-in template")
		}
		if len(w.messages) != 1 {
			t.Errorf("warnings = %v, want exactly one", w.messages)
		}
	})
}
