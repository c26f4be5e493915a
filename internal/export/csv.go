package export

import (
	"io"
	"strings"
)

// CSVWriter emits CSV rows with every cell quoted, internal quotes
// doubled. encoding/csv only quotes cells that need it, and the export
// format quotes unconditionally, so this is written by hand.
type CSVWriter struct {
	w            io.Writer
	bytesWritten int64
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		w: w,
	}
}

// Started reports whether any bytes have reached the underlying writer.
// Once true, the response can no longer be replaced with an error body.
func (cw *CSVWriter) Started() bool {
	return cw.bytesWritten > 0
}

func (cw *CSVWriter) WriteRow(cells ...string) error {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
	return cw.write(sb.String())
}

func (cw *CSVWriter) WriteBlankLine() error {
	return cw.write("\n")
}

func (cw *CSVWriter) write(s string) error {
	n, err := io.WriteString(cw.w, s)
	cw.bytesWritten += int64(n)
	return err
}
