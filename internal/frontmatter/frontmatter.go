// Package frontmatter parses the key/value metadata block at the top of a post.
package frontmatter

import (
	"slices"
	"strings"

	"github.com/taigrr/purpleblog/internal/types"
)

const delimiter = "---"

// Handler handles front-matter parsing and validation.
type Handler struct {
	required []string
	reserved []string
}

// New creates a new Handler. A nil rules value selects the default key sets.
func New(rules *types.MetadataRules) *Handler {
	r := types.DefaultMetadataRules()
	if rules != nil {
		r = *rules
	}
	return &Handler{
		required: slices.Clone(r.Required),
		reserved: slices.Clone(r.Reserved),
	}
}

// Parse extracts the front-matter block from content and validates it.
// BodyOffset in the result is the index right after the closing delimiter line.
func (h *Handler) Parse(content string) (types.ParsedPost, error) {
	if strings.TrimSpace(content) == "" {
		return types.ParsedPost{}, ErrEmptyDocument
	}

	metadata := make(map[string]string)
	pos := 0
	closed := false

	for lineNum := 0; pos < len(content); lineNum++ {
		end := strings.IndexByte(content[pos:], '\n')
		next := pos + end + 1
		if end == -1 {
			end = len(content) - pos
			next = len(content) + 1
		}
		line := content[pos : pos+end]

		if lineNum == 0 {
			if !isDelimiter(line) {
				return types.ParsedPost{}, ErrMissingOpeningDelimiter
			}
			pos = next
			continue
		}

		if isDelimiter(line) {
			closed = true
			pos = min(next, len(content))
			break
		}

		key, value, err := h.parseLine(lineNum, line)
		if err != nil {
			return types.ParsedPost{}, err
		}
		if _, exists := metadata[key]; exists {
			return types.ParsedPost{}, &DuplicateKeyError{Key: key}
		}
		metadata[key] = value
		pos = next
	}

	if !closed {
		return types.ParsedPost{}, ErrUnterminatedBlock
	}
	if len(metadata) == 0 {
		return types.ParsedPost{}, ErrEmptyMetadata
	}
	if missing := h.Missing(metadata); len(missing) > 0 {
		return types.ParsedPost{}, &MissingKeysError{Keys: missing}
	}

	return types.ParsedPost{
		Metadata:   metadata,
		BodyOffset: pos,
		Body:       content[pos:],
	}, nil
}

func (h *Handler) parseLine(lineNum int, line string) (string, string, error) {
	key, value, found := strings.Cut(line, ":")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", &LineError{Line: lineNum, Text: strings.TrimRight(line, "\r")}
	}
	if h.IsReserved(key) {
		return "", "", &ReservedKeyError{Key: key}
	}
	return key, strings.TrimSpace(value), nil
}

// IsReserved reports whether key may only be set by the generator.
func (h *Handler) IsReserved(key string) bool {
	return slices.Contains(h.reserved, key)
}

// Missing returns the required keys absent from metadata, in rule order.
func (h *Handler) Missing(metadata map[string]string) []string {
	var missing []string
	for _, key := range h.required {
		if _, ok := metadata[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// IsHidden reports whether a post opted out of the index and posts.json.
func IsHidden(metadata map[string]string) bool {
	return metadata["hidden"] == "true"
}

func isDelimiter(line string) bool {
	return strings.TrimSuffix(line, "\r") == delimiter
}
