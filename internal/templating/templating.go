// Package templating substitutes {{key}} placeholders in HTML templates.
package templating

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/taigrr/purpleblog/internal/types"
)

// PublishedKey is the placeholder whose value is rendered as a date.
const PublishedKey = "published"

// DefaultDateLayout renders dates like "March 14, 2024".
const DefaultDateLayout = "January 2, 2006"

const (
	plainTable  = "<table>"
	spacedTable = `<table cellpadding="0" cellspacing="0">`
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// DefaultInputLayouts are tried in order when parsing a published date.
var DefaultInputLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"2006-1-2",
	"2006-1-2 15:04",
	"1/2/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
}

// ErrInvalidPublishedDate is returned when a published value is not a date.
var ErrInvalidPublishedDate = errors.New("the value of \"published\" metadata property is incorrect")

// DateError carries the value that failed to parse as a date.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidPublishedDate, e.Value)
}

func (e *DateError) Unwrap() error { return ErrInvalidPublishedDate }

// Engine renders templates against a TemplateContext.
type Engine struct {
	dateLayout   string
	inputLayouts []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithDateLayout sets the layout used to render the published placeholder.
func WithDateLayout(layout string) Option {
	return func(e *Engine) {
		if layout != "" {
			e.dateLayout = layout
		}
	}
}

// WithDateInputLayouts replaces the layouts accepted when parsing published values.
func WithDateInputLayouts(layouts ...string) Option {
	return func(e *Engine) {
		if len(layouts) > 0 {
			e.inputLayouts = slices.Clone(layouts)
		}
	}
}

// New creates a new Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		dateLayout:   DefaultDateLayout,
		inputLayouts: DefaultInputLayouts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render replaces every {{key}} in template found in ctx. Unknown placeholders
// are left as-is. Every <table> tag is given zero cell padding and spacing.
func (e *Engine) Render(template string, ctx types.TemplateContext) (string, error) {
	var renderErr error
	result := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		if renderErr != nil {
			return token
		}
		key := token[2 : len(token)-2]
		value, ok := ctx[key]
		if !ok {
			return token
		}
		if key == PublishedKey {
			date, err := e.ParseDate(value)
			if err != nil {
				renderErr = err
				return token
			}
			return date.Format(e.dateLayout)
		}
		return value
	})
	if renderErr != nil {
		return "", renderErr
	}

	return strings.ReplaceAll(result, plainTable, spacedTable), nil
}

// ParseDate parses value with the first matching input layout.
func (e *Engine) ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range e.inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &DateError{Value: value}
}
