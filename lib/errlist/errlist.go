/*
	errlist provides an error container: a value that collects zero or
	more errors in occurrence order, and is itself an error, so a whole
	batch of failures can travel through any single-error channel.

	Callers that care about the single-vs-many distinction type-assert
	on `*errlist.List`; everyone else just sees an `error` whose message
	happens to span several lines.
*/
package errlist

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.polydawn.net/nodecat/lib/iofilter"
)

// DefaultMessage heads the rendering of any list constructed without one.
const DefaultMessage = "multiple errors occurred"

const circularMarker = "<circular>"

var _ error = &List{}

type List struct {
	msg  string
	errs []error
}

func New() *List {
	return NewWithMessage(DefaultMessage)
}

func NewWithMessage(msg string) *List {
	return &List{msg: msg}
}

// Adds one error to the end of the collection.
func (l *List) Append(err error) {
	l.errs = append(l.errs, err)
}

func (l *List) Len() int {
	return len(l.errs)
}

func (l *List) Get(i int) error {
	return l.errs[i]
}

// Returns a copy of the collected errors, in occurrence order.
func (l *List) Errors() []error {
	errs := make([]error, len(l.errs))
	copy(errs, l.errs)
	return errs
}

func (l *List) Message() string {
	return l.msg
}

/*
	Renders the list's message followed by each member's own rendering,
	one tab stop deeper.  Lists nested inside lists indent again; a list
	reachable from itself renders as a fixed marker rather than
	recursing forever.
*/
func (l *List) Error() string {
	var buf bytes.Buffer
	l.render(&buf, map[*List]bool{})
	return strings.TrimSuffix(buf.String(), "\n")
}

func (l *List) render(w io.Writer, rendering map[*List]bool) {
	if rendering[l] {
		fmt.Fprintf(w, "%s\n", circularMarker)
		return
	}
	rendering[l] = true
	defer delete(rendering, l)

	fmt.Fprintf(w, "%s:\n", l.msg)
	ind := iofilter.LineIndentingWriter(w)
	for _, err := range l.errs {
		switch sub := err.(type) {
		case *List:
			sub.render(ind, rendering)
		default:
			fmt.Fprintf(ind, "%s\n", err.Error())
		}
	}
}
