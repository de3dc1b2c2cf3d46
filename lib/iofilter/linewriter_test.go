package iofilter

import (
	"bytes"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func Test(t *testing.T) {
	Convey("Line prefixing writers should DTRT", t, FailureContinues, func() {
		Convey("Given a single line", func() {
			buf := bytes.NewBufferString("msg\n")
			var out bytes.Buffer
			n, err := io.Copy(LineIndentingWriter(&out), buf)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 4)
			So(out.String(), ShouldResemble, "\tmsg\n")
		})

		Convey("Given several lines in one write", func() {
			var out bytes.Buffer
			_, err := LineIndentingWriter(&out).Write([]byte("\nwow\ndang\nmsg\n"))
			So(err, ShouldBeNil)
			So(out.String(), ShouldResemble, "\t\n\twow\n\tdang\n\tmsg\n")
		})

		Convey("Lines split across writes come out whole", func() {
			var out bytes.Buffer
			wr := LinePrefixingWriter(&out, []byte("| "))
			wr.Write([]byte("first half"))
			So(out.String(), ShouldResemble, "")
			wr.Write([]byte(", second half\n"))
			So(out.String(), ShouldResemble, "| first half, second half\n")
		})

		Convey("Unterminated trailing fragments don't get flushed", func() {
			var out bytes.Buffer
			wr := LineIndentingWriter(&out)
			wr.Write([]byte("msg1\nmsg2"))
			So(out.String(), ShouldResemble, "\tmsg1\n")
		})

		Convey("Nested indenters accumulate", func() {
			var out bytes.Buffer
			wr := LineIndentingWriter(&out)
			wr.Write([]byte("msg1\n"))
			LineIndentingWriter(wr).Write([]byte("msg2\n"))
			wr.Write([]byte("msg3\n"))
			So(out.String(), ShouldResemble, "\tmsg1\n\t\tmsg2\n\tmsg3\n")
		})
	})
}
