// Package report renders the window of a ByteView through a typed lens.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rawbytedev/bufview"
	"gopkg.in/yaml.v3"
)

// Lens names accepted by Build.
const (
	LensByte    = "byte"
	LensInt16   = "int16"
	LensFloat32 = "float32"
)

// Row is one line of output. Offset is in bytes from the start of the window.
type Row struct {
	Offset int      `yaml:"offset"`
	Values []string `yaml:"values,flow"`
}

// Report describes a window seen through one lens.
type Report struct {
	View        string `yaml:"view"`
	Order       string `yaml:"order"`
	Lens        string `yaml:"lens"`
	ElementSize int    `yaml:"element_size"`
	GLType      string `yaml:"gl_type,omitempty"`
	Count       int    `yaml:"count"`
	Trailing    int    `yaml:"trailing_bytes,omitempty"`
	ReadOnly    bool   `yaml:"read_only"`
	Rows        []Row  `yaml:"rows"`
}

// Build reads v's [position, limit) window through lens, columns values per
// row. v's cursor is left as it was.
func Build(v *bufview.ByteView, lens string, columns int) (*Report, error) {
	if columns < 1 {
		return nil, fmt.Errorf("report: columns must be positive, got %d", columns)
	}
	r := &Report{
		View:     v.String(),
		Order:    v.Order().String(),
		Lens:     lens,
		ReadOnly: v.IsReadOnly(),
	}

	var (
		values []string
		err    error
	)
	switch lens {
	case LensByte:
		r.ElementSize = 1
		values, err = bytesOf(v)
	case LensInt16:
		w := bufview.DeriveReadOnly[int16](v)
		r.ElementSize, r.GLType = w.ElementSize(), glName(w.ElementType())
		values, err = elementsOf(w, func(x int16) string {
			return strconv.FormatInt(int64(x), 10)
		})
	case LensFloat32:
		w := bufview.DeriveReadOnly[float32](v)
		r.ElementSize, r.GLType = w.ElementSize(), glName(w.ElementType())
		values, err = elementsOf(w, func(x float32) string {
			return strconv.FormatFloat(float64(x), 'g', -1, 32)
		})
	default:
		return nil, fmt.Errorf("report: unknown lens %q", lens)
	}
	if err != nil {
		return nil, err
	}

	r.Count = len(values)
	r.Trailing = v.Remaining() - r.Count*r.ElementSize
	for i := 0; i < len(values); i += columns {
		end := min(i+columns, len(values))
		r.Rows = append(r.Rows, Row{Offset: i * r.ElementSize, Values: values[i:end]})
	}
	return r, nil
}

func bytesOf(v *bufview.ByteView) ([]string, error) {
	raw := make([]byte, v.Remaining())
	if err := v.Duplicate().GetBytes(raw); err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, b := range raw {
		out[i] = fmt.Sprintf("%02x", b)
	}
	return out, nil
}

func elementsOf[T bufview.Element](w *bufview.WordView[T], format func(T) string) ([]string, error) {
	raw := make([]T, w.Remaining())
	if err := w.GetSlice(raw); err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, x := range raw {
		out[i] = format(x)
	}
	return out, nil
}

func glName(code int) string {
	switch code {
	case bufview.GLShort:
		return "GL_SHORT"
	case bufview.GLFloat:
		return "GL_FLOAT"
	}
	return ""
}

// WriteYAML encodes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTable writes a header line followed by one tab-aligned row per Row,
// offsets in hex.
func (r *Report) WriteTable(w io.Writer) error {
	header := fmt.Sprintf("# %s %s %s x%d", r.View, r.Order, r.Lens, r.Count)
	if r.Trailing > 0 {
		header += fmt.Sprintf(" (+%d trailing)", r.Trailing)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(tw, "%08x:\t%s\t\n", row.Offset, strings.Join(row.Values, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Write dispatches on format, "table" or "yaml".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		return r.WriteYAML(w)
	case "table":
		return r.WriteTable(w)
	}
	return fmt.Errorf("report: unknown format %q", format)
}
