package cli

import (
	"github.com/spacemonkeygo/errors"
)

type ExitCode byte

const (
	EXIT_SUCCESS      = ExitCode(0)
	EXIT_BADARGS      = ExitCode(1)
	EXIT_UNKNOWNPANIC = ExitCode(2) // same code as golang uses when the process dies naturally on an unhandled panic.
	EXIT_IO           = ExitCode(3) // some input couldn't be read, or the output couldn't be written.
)

var ExitCodeKey = errors.GenSym()

/*
	CLI errors are the last line: they should be formatted to be user-facing.
	The main method will convert a CLIError into a short and well-formatted
	message, and will *not* include stack traces unless the user is running
	with debug mode enabled.
*/
var Error *errors.ErrorClass = errors.NewClass("CLIError")

/*
	Exit errors carry an exit code and nothing the user hasn't already
	been told: whatever needed saying went to stderr at the moment it
	happened.  The main method should exit with the attached code and
	stay quiet about it.
*/
var Exit *errors.ErrorClass = Error.NewClass("CLIExit")

/*
	Use this to set a specific error code the process should exit with
	when producing a `cli.Error`.

	Example: `cli.Error.NewWith("something terrible!", SetExitCode(EXIT_BADARGS))`
*/
func SetExitCode(code ExitCode) errors.ErrorOption {
	return errors.SetData(ExitCodeKey, code)
}

// The exit code attached to an error, or EXIT_SUCCESS for nil, or
// EXIT_UNKNOWNPANIC for errors that never declared one.
func ExitCodeForError(err error) ExitCode {
	if err == nil {
		return EXIT_SUCCESS
	}
	if code, ok := errors.GetData(err, ExitCodeKey).(ExitCode); ok {
		return code
	}
	return EXIT_UNKNOWNPANIC
}
