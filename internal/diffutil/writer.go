// Package diffutil collects the small amount of I/O plumbing the CLI needs:
// a line-prefixing writer for namespacing stderr messages by input path, an
// error-latching writer for the text renderer's print loop, a typed input
// error, and the --debug-file atomic write path.
package diffutil

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, latching the first error it returns and
// refusing further writes once set. printText writes one diff line per
// render.Line; latching the error here means the print loop only has to
// check ew.Err once, after it finishes, instead of after every Fprintf.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to the wrapped Writer while Err is nil, and retains
// the first error encountered.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix to every line written
// through it. cmd/platydiff opens one PrefixWriter for each input path
// ("left: " / "right: ") that fails to read, so each stderr line names its
// input instead of reading as a bare, unattributed error.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	return &Prefixer{prefix: prefix, out: w, atLineStart: true}
}

// Prefixer writes prefix before every line written to an underlying writer,
// flushing each line through as soon as its trailing newline arrives.
// Construct with PrefixWriter.
type Prefixer struct {
	prefix      string
	out         io.Writer
	atLineStart bool
}

// Write inserts prefix before every line in p and forwards it to the
// underlying writer.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if p.atLineStart {
			if _, err := io.WriteString(p.out, p.prefix); err != nil {
				return n, err
			}
			p.atLineStart = false
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
			p.atLineStart = true
		} else {
			b = nil
		}

		m, err := p.out.Write(line)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
