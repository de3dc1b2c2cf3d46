package main

import (
	"fmt"
	"os"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"

	"go.polydawn.net/nodecat/cli"
)

func main() {
	try.Do(func() {
		cli.Main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	}).Catch(cli.Exit, func(err *errors.Error) {
		// Everything worth saying already went to stderr as it happened;
		// all that's left is mapping the result onto an exit status.
		if isDebugMode() {
			fmt.Fprintf(os.Stderr, "nodecat: exiting: %s\n", err.Message())
		}
		os.Exit(int(cli.ExitCodeForError(err)))
	}).Catch(cli.Error, func(err *errors.Error) {
		// Errors marked as valid user-facing issues get a short route out.
		if isDebugMode() {
			// in debug-mode, repanic all the way to death so that we get all of golang's built in log features.
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "nodecat: %s\n", err.Message())
		os.Exit(int(cli.ExitCodeForError(err)))
	}).CatchAll(func(err error) {
		// Errors that aren't marked as valid user-facing issues are bugs.
		if isDebugMode() {
			panic(err)
		}
		fmt.Fprintf(os.Stderr,
			"nodecat encountered a serious issue and was unable to complete your request!\n"+
				"Please file an issue to help us fix it.\n"+
				"This is the short version of the problem:\n"+
				"%s\n",
			err)
		os.Exit(int(cli.EXIT_UNKNOWNPANIC))
	})
}

func isDebugMode() bool {
	// if either "DEBUG" or "NODECAT_DEBUG" env vars are set, we're in debug mode.
	return len(os.Getenv("DEBUG")) != 0 || len(os.Getenv("NODECAT_DEBUG")) != 0
}
