package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format names an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned for an unrecognised output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatMarkdown, FormatJSON:
		return f, nil
	case "", "text":
		return FormatTable, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w %q (want table, markdown or json)", ErrUnknownFormat, s)
}

// Writer outputs a set of rows.
type Writer interface {
	Write(rows []Row) error
}

// NewWriter returns the Writer for f writing to output.
func NewWriter(f Format, output io.Writer) (Writer, error) {
	switch f {
	case FormatTable:
		return NewTableWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
}
