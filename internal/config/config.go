// Package config holds the settings of a blog build.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/purpleblog/internal/templating"
)

// ExitUsage is the process status used when required settings are missing.
const ExitUsage = 0x75

// ErrMissingRequired is wrapped by Validate when a required setting is empty.
var ErrMissingRequired = errors.New("missing required argument")

// Config describes one blog build. It is built once and passed by value.
type Config struct {
	InputDir          string   `yaml:"input"`
	OutputDir         string   `yaml:"output"`
	BlogName          string   `yaml:"name"`
	BlogDescription   string   `yaml:"description"`
	IndexTemplatePath string   `yaml:"indexTemplate"`
	PostTemplatePath  string   `yaml:"postTemplate"`
	Stylesheet        string   `yaml:"stylesheet"`
	Ignore            []string `yaml:"ignore"`
}

// Load reads a YAML config file. An empty path yields a zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %s - %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %s - %w", path, err)
	}
	return cfg, nil
}

// Merge returns c with every non-empty field of override applied on top.
func (c Config) Merge(override Config) Config {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	c.InputDir = pick(c.InputDir, override.InputDir)
	c.OutputDir = pick(c.OutputDir, override.OutputDir)
	c.BlogName = pick(c.BlogName, override.BlogName)
	c.BlogDescription = pick(c.BlogDescription, override.BlogDescription)
	c.IndexTemplatePath = pick(c.IndexTemplatePath, override.IndexTemplatePath)
	c.PostTemplatePath = pick(c.PostTemplatePath, override.PostTemplatePath)
	c.Stylesheet = pick(c.Stylesheet, override.Stylesheet)
	if len(override.Ignore) > 0 {
		c.Ignore = append(append([]string{}, c.Ignore...), override.Ignore...)
	}
	return c
}

// Validate checks that every required setting is present.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.InputDir, validation.By(notBlank("-i: input directory is required"))),
		validation.Field(&c.OutputDir, validation.By(notBlank("-o: output directory is required"))),
		validation.Field(&c.BlogName, validation.By(notBlank("-n: blog name is required"))),
		validation.Field(&c.BlogDescription, validation.By(notBlank("-d: blog description is required"))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequired, err)
	}
	return nil
}

func notBlank(message string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("purpleblog.config.required", message)
		}
		return nil
	}
}

// Templates holds the template text used for a build.
type Templates struct {
	Index string
	Post  string
}

// Warner receives template fallback warnings.
type Warner interface {
	Warn(msg any, keyvals ...any)
}

// LoadTemplates reads the configured template files. A file that cannot be
// read is replaced by the built-in template and reported to w.
func (c Config) LoadTemplates(w Warner) Templates {
	return Templates{
		Index: loadTemplate(c.IndexTemplatePath, templating.DefaultIndexTemplate, w),
		Post:  loadTemplate(c.PostTemplatePath, templating.DefaultPostTemplate, w),
	}
}

func loadTemplate(path, fallback string, w Warner) string {
	if path == "" {
		return fallback
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if w != nil {
			w.Warn("cannot read template file, using built-in template", "path", path, "err", err)
		}
		return fallback
	}
	return string(data)
}
