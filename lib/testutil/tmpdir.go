package testutil

import (
	"os"
	"path/filepath"

	"github.com/smartystreets/goconvey/convey"
)

/*
	Decorates a goconvey test with a tmpdir: the function runs chdir'd
	into a fresh temporary directory, which is removed again on the way
	out.

	See also https://github.com/smartystreets/goconvey/wiki/Decorating-tests-to-provide-common-logic
*/
func WithTmpdir(fn interface{}) func(c convey.C) {
	return func(c convey.C) {
		retreat, err := os.Getwd()
		if err != nil {
			panic(err)
		}
		convey.Reset(func() {
			os.Chdir(retreat)
		})

		tmpdir, err := os.MkdirTemp("", "nodecat-test-")
		if err != nil {
			panic(err)
		}
		tmpdir, err = filepath.Abs(tmpdir)
		if err != nil {
			panic(err)
		}
		convey.Reset(func() {
			os.RemoveAll(tmpdir)
		})
		if err := os.Chdir(tmpdir); err != nil {
			panic(err)
		}

		switch fn := fn.(type) {
		case func():
			fn()
		case func(c convey.C):
			fn(c)
		default:
			panic("WithTmpdir requires a `func()` or `func(c convey.C)`")
		}
	}
}
