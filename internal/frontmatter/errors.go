package frontmatter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDocument           = errors.New("file is empty")
	ErrMissingOpeningDelimiter = errors.New("metadata opening delimiter not found at start of file")
	ErrMalformedLine           = errors.New("invalid metadata line")
	ErrDuplicateKey            = errors.New("duplicate metadata property")
	ErrUnterminatedBlock       = errors.New("unexpected end of metadata section")
	ErrReservedKey             = errors.New("metadata property is reserved for internal use")
	ErrEmptyMetadata           = errors.New("file does not contain metadata")
	ErrMissingRequiredKeys     = errors.New("missing required metadata properties")
)

// LineError reports a front-matter line that is not a key: value pair.
type LineError struct {
	Line int // zero-based line number in the document
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s (line %d): %q", ErrMalformedLine, e.Line+1, e.Text)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }

// DuplicateKeyError reports a key set twice in the same block.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateKey, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// ReservedKeyError reports a key that only the generator may set.
type ReservedKeyError struct {
	Key string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrReservedKey, e.Key)
}

func (e *ReservedKeyError) Unwrap() error { return ErrReservedKey }

// MissingKeysError names every required key absent from the block.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredKeys, strings.Join(e.Keys, ", "))
}

func (e *MissingKeysError) Unwrap() error { return ErrMissingRequiredKeys }
