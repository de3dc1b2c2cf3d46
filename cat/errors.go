package cat

import (
	"github.com/spacemonkeygo/errors"
)

var Error *errors.ErrorClass = errors.NewClass("CatError") // grouping, do not instantiate

/*
	Raised when one input could not be read (opening the name failed, or
	the stream errored partway).  Carries the originating input's name;
	fetch it back with `SourceName`.

	A read failure never stops the run: remaining inputs still get their
	turn, and the failure is collected for the final result.
*/
var ReadError *errors.ErrorClass = Error.NewClass("ReadError")

/*
	Raised when the output sink failed.  Once the output is judged
	broken the whole run terminates: there is nowhere left to put bytes.

	Write failures carry no input name; the output belongs to the run,
	not to any one input.
*/
var WriteError *errors.ErrorClass = Error.NewClass("WriteError")

var SourceNameKey = errors.GenSym()

func setSourceName(name string) errors.ErrorOption {
	return errors.SetData(SourceNameKey, name)
}

// Returns the name of the input whose read produced err, or "" if the
// error didn't come from reading a named input.
func SourceName(err error) string {
	name, _ := errors.GetData(err, SourceNameKey).(string)
	return name
}
