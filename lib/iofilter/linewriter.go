package iofilter

import (
	"bufio"
	"bytes"
	"io"
)

var (
	tab = []byte{'\t'}
	br  = []byte{'\n'}
)

/*
	Returns a writer that shifts everything written through it
	one tab stop to the right.

	Indenting writers nest: wrapping one around another yields two
	tabs of leading whitespace, and so on.  Handy for rendering
	anything tree-shaped onto a flat stream.
*/
func LineIndentingWriter(w io.Writer) io.Writer {
	return LinePrefixingWriter(w, tab)
}

// Proxies content linewise, prepending `prefix` to each line.
func LinePrefixingWriter(w io.Writer, prefix []byte) io.Writer {
	return &lineWriter{
		delegate: w,
		prefix:   prefix,
	}
}

var _ io.Writer = &lineWriter{}

/*
	Reframes a byte stream into whole lines before relaying it on.

	Each complete line reaches the delegate writer in exactly one
	`Write` call (prefix, body, and linebreak joined first), so a
	delegate that serializes its writes won't tear lines apart.
	Bytes after the last linebreak are held until a later write
	completes the line; an unterminated trailing fragment is never
	flushed.
*/
type lineWriter struct {
	delegate io.Writer
	prefix   []byte
	rem      []byte
}

func (lw *lineWriter) Write(b []byte) (int, error) {
	lw.rem = append(lw.rem, b...)
	for {
		adv, tok, err := bufio.ScanLines(lw.rem, false)
		if err != nil {
			return len(b), err
		}
		if adv == 0 {
			// no complete line buffered; hold the remainder.
			return len(b), nil
		}
		_, err = lw.delegate.Write(bytes.Join([][]byte{
			lw.prefix,
			tok,
			br,
		}, nil))
		if err != nil {
			return len(b), err
		}
		lw.rem = lw.rem[adv:]
	}
}
