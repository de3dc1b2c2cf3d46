/*
	source models one named byte input headed for concatenation.

	Two implementations exist: `File`, which the engine opens and owns
	outright, and `Supplied`, which wraps a stream whose lifecycle
	belongs to the caller (stdin being the canonical example).  The
	distinction matters exactly once, at close time.
*/
package source

import (
	"io"
)

type Source interface {
	// The name this input was requested under; used in error reporting.
	Name() string

	/*
		Yields the readable byte stream for this input.

		May be called at most once per Source.  An error from Open is a
		read failure for this input (the name was unusable), not a
		structural problem with the whole run.
	*/
	Open() (io.Reader, error)

	/*
		Releases whatever Open acquired.  Safe to call whether or not
		Open succeeded, and on sources never opened at all.
	*/
	Close() error
}

/*
	Picks the Source implementation for a name: names registered in the
	supplied-stream map yield a `Supplied` source backed by the caller's
	stream; everything else is treated as a path to open fresh.

	Note there is no special casing of "-" here: whoever resolves
	arguments registers stdin under whatever name they please.
*/
func Pick(name string, supplied map[string]io.Reader) Source {
	if stream, ok := supplied[name]; ok {
		return NewSupplied(name, stream)
	}
	return NewFile(name)
}
