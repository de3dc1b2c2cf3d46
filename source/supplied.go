package source

import (
	"io"
)

// interface assertion
var _ Source = &Supplied{}

/*
	A caller-supplied input: the stream already exists and its lifecycle
	is managed outside the engine.  Close is a no-op -- we only ever read.
*/
type Supplied struct {
	name   string
	stream io.Reader
}

func NewSupplied(name string, stream io.Reader) *Supplied {
	return &Supplied{
		name:   name,
		stream: stream,
	}
}

func (s *Supplied) Name() string {
	return s.name
}

func (s *Supplied) Open() (io.Reader, error) {
	return s.stream, nil
}

func (s *Supplied) Close() error {
	return nil
}
