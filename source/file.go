package source

import (
	"io"
	"os"

	"github.com/spacemonkeygo/errors"
)

// interface assertion
var _ Source = &File{}

/*
	An owned input: the name is a filesystem path, opened freshly for
	this run and closed by whoever drove the copy.
*/
type File struct {
	name string
	f    *os.File
}

func NewFile(name string) *File {
	return &File{name: name}
}

func (s *File) Name() string {
	return s.name
}

func (s *File) Open() (io.Reader, error) {
	f, err := os.Open(s.name)
	if err != nil {
		return nil, OpenError.Wrap(errors.IOError.Wrap(err))
	}
	s.f = f
	return f, nil
}

func (s *File) Close() error {
	if s.f == nil {
		return nil
	}
	f := s.f
	s.f = nil
	return f.Close()
}
