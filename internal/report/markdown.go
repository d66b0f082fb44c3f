package report

import (
	"io"

	"github.com/nao1215/markdown"

	"widar.klederson.com/internal/config"
)

// MarkdownWriter outputs rows as a GitHub-flavored Markdown table.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs a title followed by the network table.
func (w *MarkdownWriter) Write(rows []Row) error {
	md := markdown.NewMarkdown(w.output)
	md.H1(config.AppTitle)
	md.PlainText("")

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells())
	}
	md.Table(markdown.TableSet{
		Header: Headers,
		Rows:   cells,
	})

	return md.Build()
}
