package output

import (
	"encoding/json"
	"io"

	"treesift/pkg/parser"
)

// JSONFormatter renders one JSON object per item record followed by a
// final report object, so very large runs stream without buffering.
type JSONFormatter struct {
	enc  *json.Encoder
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(w io.Writer, opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{enc: json.NewEncoder(w), opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// WriteHeader is a no-op for JSON output.
func (f *JSONFormatter) WriteHeader(string) error {
	return nil
}

// jsonItem is the wire shape of one item record.
type jsonItem struct {
	Line  int    `json:"line"`
	Level int    `json:"level"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Raw   string `json:"raw,omitempty"`
}

// WriteItem emits one record object on its own line.
func (f *JSONFormatter) WriteItem(item *parser.Item) error {
	if f.opts.Quiet {
		return nil
	}
	rec := jsonItem{
		Line:  item.LineNum,
		Level: item.IndentLevel,
		Name:  item.Name,
		Path:  item.FullPath,
	}
	if f.opts.Verbose {
		rec.Raw = item.Raw
	}
	return f.enc.Encode(rec)
}

// WriteReport emits the final report object.
func (f *JSONFormatter) WriteReport(report *Report) error {
	if f.opts.Quiet {
		return f.enc.Encode(report.Summary)
	}
	return f.enc.Encode(report)
}
