/*
	cat is the concatenation engine: it copies a sequence of named
	inputs, in order, onto one shared output, continuing past per-input
	read failures and collecting everything that went wrong into a
	single result.

	The engine owns no streams but the files it opens itself.  The
	output and error sinks, and any caller-supplied input streams, are
	borrowed: they're never closed here.
*/
package cat

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spacemonkeygo/errors"

	"go.polydawn.net/nodecat/lib/errlist"
	"go.polydawn.net/nodecat/source"
)

const copyBufferSize = 32 * 1024

type Options struct {
	/*
		Caller-supplied input streams, keyed by the name they answer to
		in the names list (convention: stdin under "-").

		Each stream here is consumed at most once per run, no matter how
		often its name repeats; later occurrences are silently skipped,
		the same as re-reading an exhausted stream would be.
	*/
	FileStreams map[string]io.Reader

	// Output sink.  Defaults to the process's stdout.  Never closed.
	Stdout io.Writer

	// Error-report sink.  Defaults to the process's stderr.  One
	// human-readable line lands here per failure, at the moment the
	// failure is observed.  Never closed.
	Stderr io.Writer

	// Journal for debug-grade progress events.  Defaults to discard.
	Journal log15.Logger
}

/*
	Begins concatenating the named inputs and returns a channel which
	yields the run's result exactly once, then closes.

	The result is nil for a clean run, the lone failure if exactly one
	thing went wrong, or an `*errlist.List` of every failure (in
	occurrence order) if several did.  Read failures are `ReadError`s
	bearing the input's name; an output failure is a `WriteError` and
	terminates the run without touching the remaining names.
*/
func Run(names []string, opts *Options) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- newCatter(names, opts).run()
	}()
	return done
}

// Blocking form of `Run`.
func Cat(names []string, opts *Options) error {
	return <-Run(names, opts)
}

type catter struct {
	names    []string
	supplied map[string]io.Reader
	stdout   io.Writer
	stderr   io.Writer
	journal  log15.Logger
	consumed map[string]bool
	errs     *errlist.List
}

func newCatter(names []string, opts *Options) *catter {
	c := &catter{
		names:    names,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		consumed: make(map[string]bool),
		errs:     errlist.New(),
	}
	c.journal = log15.New()
	c.journal.SetHandler(log15.DiscardHandler())
	if opts == nil {
		return c
	}
	if opts.FileStreams != nil {
		c.supplied = opts.FileStreams
	}
	if opts.Stdout != nil {
		c.stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		c.stderr = opts.Stderr
	}
	if opts.Journal != nil {
		c.journal = opts.Journal
	}
	return c
}

func (c *catter) run() error {
	for _, name := range c.names {
		_, isSupplied := c.supplied[name]
		if isSupplied && c.consumed[name] {
			c.journal.Debug("input already consumed, skipping", "input", name)
			continue
		}
		stop := c.copyOne(source.Pick(name, c.supplied))
		if isSupplied {
			// consumed covers errored streams too: a stream that blew up
			// mid-read must not be offered another turn.
			c.consumed[name] = true
		}
		if stop {
			break
		}
	}
	switch c.errs.Len() {
	case 0:
		return nil
	case 1:
		return c.errs.Get(0)
	default:
		return c.errs
	}
}

/*
	Copies one input to the output.  Returns true only when the output
	itself failed, which ends the entire run; read failures are recorded
	and reported, then treated like end-of-data.
*/
func (c *catter) copyOne(src source.Source) (stop bool) {
	defer src.Close()
	c.journal.Debug("concatenating input", "input", src.Name())

	stream, err := src.Open()
	if err != nil {
		c.readFailed(src.Name(), err)
		return false
	}

	buf := make([]byte, copyBufferSize)
	for {
		n, rerr := stream.Read(buf)
		if n > 0 {
			wn, werr := c.stdout.Write(buf[:n])
			if werr == nil && wn < n {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				c.writeFailed(werr)
				return true
			}
		}
		switch {
		case rerr == io.EOF:
			c.journal.Debug("input exhausted", "input", src.Name())
			return false
		case rerr != nil:
			c.readFailed(src.Name(), rerr)
			return false
		}
	}
}

func (c *catter) readFailed(name string, cause error) {
	c.errs.Append(ReadError.NewWith(message(cause), setSourceName(name)))
	fmt.Fprintf(c.stderr, "nodecat: %s: %s\n", name, message(cause))
	c.journal.Warn("input read failed, continuing", "input", name, "error", cause)
}

func (c *catter) writeFailed(cause error) {
	c.errs.Append(WriteError.Wrap(cause))
	fmt.Fprintf(c.stderr, "nodecat: %s\n", message(cause))
	c.journal.Error("output write failed, aborting", "error", cause)
}

// The human half of an error: spacemonkey errors prefix their class
// name in `Error()`, which we don't want on user-facing report lines.
func message(err error) string {
	if e, ok := err.(*errors.Error); ok {
		return e.Message()
	}
	return err.Error()
}
