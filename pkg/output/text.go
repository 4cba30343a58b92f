package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"treesift/pkg/parser"
)

// TextFormatter renders records as human-readable text, one block per
// item followed by a final statistics section.
type TextFormatter struct {
	w    io.Writer
	opts FormatOptions
}

// NewTextFormatter creates a text formatter writing to w.
func NewTextFormatter(w io.Writer, opts FormatOptions) *TextFormatter {
	return &TextFormatter{w: w, opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// WriteHeader emits the section header.
func (f *TextFormatter) WriteHeader(title string) error {
	if f.opts.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(f.w, "\n--- %s ---\n", title)
	return err
}

// WriteItem emits one record block.
func (f *TextFormatter) WriteItem(item *parser.Item) error {
	if f.opts.Quiet {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Line %d (Level %d):\n", item.LineNum, item.IndentLevel)
	fmt.Fprintf(&b, "  Item Name: '%s'\n", item.Name)
	fmt.Fprintf(&b, "  Full Path: '%s'\n", item.FullPath)
	if f.opts.Verbose {
		fmt.Fprintf(&b, "  Raw Line:  '%s'\n", item.Raw)
	}
	b.WriteString(strings.Repeat("-", 20))
	b.WriteByte('\n')
	_, err := io.WriteString(f.w, b.String())
	return err
}

// WriteReport emits the final statistics section.
func (f *TextFormatter) WriteReport(report *Report) error {
	var b strings.Builder
	b.WriteString("\n=== Final Statistics ===\n")
	fmt.Fprintf(&b, "Total lines processed: %s\n", groupDigits(report.Summary.TotalLines))
	fmt.Fprintf(&b, "Files found: %s\n", groupDigits(report.Summary.FilesFound))

	if len(report.Summary.Extensions) > 0 {
		b.WriteString("\nFile types found:\n")
		for _, ec := range report.Summary.Extensions {
			fmt.Fprintf(&b, "  .%s: %s files\n", ec.Extension, groupDigits(ec.Count))
		}
	}

	if report.Metadata.Interrupted {
		b.WriteString("\n(run interrupted; statistics cover completed work only)\n")
	}
	if f.opts.Verbose {
		fmt.Fprintf(&b, "\nDuration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
