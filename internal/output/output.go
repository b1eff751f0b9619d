// Package output provides game output formatting in various notations.
package output

import (
	"io"
	"strings"
)

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are skipped.
type OutputWriter struct {
	w             io.Writer
	newLine       string
	lineLength    int
	maxLineLength int // 0 disables wrapping
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int, newLine string) *OutputWriter {
	if maxLineLength < 0 {
		maxLineLength = 0
	}
	if newLine == "" {
		newLine = "\n"
	}
	return &OutputWriter{
		w:             w,
		newLine:       newLine,
		maxLineLength: maxLineLength,
	}
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil || s == "" {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			o.emit(o.newLine)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit(o.newLine)
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error returned by the underlying writer.
func (o *OutputWriter) Err() error {
	return o.err
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
