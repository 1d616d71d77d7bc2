// Package ioutil provides I/O helpers used by the render methods.
package ioutil

//go:generate go tool errtrace -w .

import (
	"io"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer and accumulates the number of written bytes.
// After the first failed write all further writes are skipped and the error is kept.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = cw.w.Write(p)
	cw.num += n
	if err != nil {
		cw.err = err
		return n, errtrace.Wrap(err)
	}
	return n, nil
}

// WriteString implements io.StringWriter.
func (cw *CountingWriter) WriteString(s string) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = io.WriteString(cw.w, s)
	cw.num += n
	if err != nil {
		cw.err = err
		return n, errtrace.Wrap(err)
	}
	return n, nil
}

// WriteStrings writes all parts in order and stops on the first failure.
func (cw *CountingWriter) WriteStrings(parts ...string) *CountingWriter {
	for _, s := range parts {
		if _, err := cw.WriteString(s); err != nil {
			break
		}
	}
	return cw
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	if cw.err != nil {
		return cw.num, errtrace.Wrap(cw.err)
	}
	return cw.num, nil
}
