// Package format provides output formatting functionality for CLI commands.
// It writes dogs and breed lists in the styles the subcommands accept.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/pawmatch/internal/domain"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatDogs writes dogs to writer.
	FormatDogs(dogs []domain.Dog, writer io.Writer) error

	// FormatBreeds writes a breed catalog to writer.
	FormatBreeds(breeds []string, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple displays one dog per line: id, name, breed and age.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable displays dogs in a table with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON displays dogs as a JSON array.
	FormatterTypeJSON FormatterType = "json"
)

// ParseFormatterType accepts simple, table or json in any case.
func ParseFormatterType(s string) (FormatterType, error) {
	t := FormatterType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON:
		return t, nil
	case "":
		return FormatterTypeSimple, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected simple, table or json)", s)
	}
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewSimpleFormatter()
	}
}

// truncateString shortens s to width runes, ending in "..." when cut.
func truncateString(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
