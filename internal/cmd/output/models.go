package output

import (
	"io"

	"github.com/dhartisetu/setu"
)

// FormatAny writes data to w in the given format, auto-detecting the
// format when it is empty.
func FormatAny(w io.Writer, format string, data any) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if f == "" {
		f = DetectFormat("")
	}
	return NewFormatter(f).Format(w, data)
}

// FormatRoutes writes the route table. Tables get one row per endpoint;
// structured formats get a list of objects.
func FormatRoutes(w io.Writer, format string, routes []setu.Endpoint) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if f == "" {
		f = DetectFormat("")
	}
	if f == FormatTable {
		return NewFormatter(f).Format(w, RoutesTable(routes))
	}

	out := make([]map[string]any, 0, len(routes))
	for _, ep := range routes {
		out = append(out, map[string]any{
			"name":   ep.Name,
			"method": ep.Method,
			"path":   ep.Path,
			"policy": ep.Policy.Kind().String(),
		})
	}
	return NewFormatter(f).Format(w, out)
}

// RoutesTable converts endpoints to table data.
func RoutesTable(routes []setu.Endpoint) Data {
	rows := make([][]string, 0, len(routes))
	for _, ep := range routes {
		rows = append(rows, []string{ep.Name, ep.Method, ep.Path, ep.Policy.Kind().String()})
	}
	return Data{
		Headers:         []string{"Endpoint", "Method", "Path", "On Error"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
}
