package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"

	"go.polydawn.net/nodecat/cat"
	"go.polydawn.net/nodecat/lib/iofilter"
)

func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) {
	// The ongoing error report and the debug journal share stderr;
	// serialize so their lines can't shear.
	stderr = iofilter.NewSyncWriter(stderr)

	app := cli.NewApp()

	app.Name = "nodecat"
	app.Usage = "concatenate named files (and/or standard input) to standard output"
	app.UsageText = "nodecat [-u] [--] [file...]"
	app.Version = "v2.0.0"
	app.HideHelp = true
	app.HideVersion = true
	app.Writer = stderr
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "u",
			Usage: "accepted and ignored; output is always unbuffered",
		},
	}

	// An option we don't know is an illegal option: cite it, show the
	// usage line, and signal badargs.  (The parse error's message names
	// the offending token already.)
	app.OnUsageError = func(ctx *cli.Context, err error, _ bool) error {
		fmt.Fprintf(stderr, "nodecat: %s\n", err)
		fmt.Fprintf(stderr, "usage: %s\n", app.UsageText)
		return err
	}

	app.Action = func(ctx *cli.Context) error {
		names := append([]string{}, ctx.Args()...)
		if len(names) == 0 {
			// POSIX cat: no operands means read standard input.
			names = []string{"-"}
		}
		err := cat.Cat(names, &cat.Options{
			FileStreams: map[string]io.Reader{"-": stdin},
			Stdout:      stdout,
			Stderr:      stderr,
			Journal:     journal(stderr),
		})
		if err != nil {
			// every failure already produced its stderr line as it
			// happened; all that's left is the status.
			panic(Exit.NewWith("one or more inputs failed", SetExitCode(EXIT_IO)))
		}
		return nil
	}

	if err := app.Run(normalizeArgs(args)); err != nil {
		panic(Exit.NewWith(fmt.Sprintf("incorrect usage: %s", err), SetExitCode(EXIT_BADARGS)))
	}
}

/*
	Smooths argv into what the flag parser can take: combined
	unbuffered-mode tokens ("-uu", "-uuu", ...) collapse to "-u".
	Everything from the first operand (or "--") onward passes through
	untouched, so names that merely look like options stay names.
*/
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	out := make([]string, 0, len(args))
	out = append(out, args[0])
	rest := args[1:]
	for i, tok := range rest {
		switch {
		case tok == "--":
			return append(out, rest[i:]...)
		case isCombinedU(tok):
			out = append(out, "-u")
		case tok == "-" || !strings.HasPrefix(tok, "-"):
			// options end at the first operand.
			return append(out, rest[i:]...)
		default:
			out = append(out, tok)
		}
	}
	return out
}

func isCombinedU(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	return strings.Trim(tok[1:], "u") == ""
}

func journal(stderr io.Writer) log15.Logger {
	log := log15.New()
	if isDebugMode() {
		log.SetHandler(log15.StreamHandler(stderr, log15.TerminalFormat()))
	} else {
		log.SetHandler(log15.DiscardHandler())
	}
	return log
}

func isDebugMode() bool {
	// if either "DEBUG" or "NODECAT_DEBUG" env vars are set, we're in debug mode.
	return len(os.Getenv("DEBUG")) != 0 || len(os.Getenv("NODECAT_DEBUG")) != 0
}
