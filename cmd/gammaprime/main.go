// Command gammaprime reads an index M from standard input and prints the
// Gamma-series prediction P_{M+1}.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexshd/gammaprime"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
// Invalid input is reported as a single "Invalid input." line on stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if errors.Is(err, gammaprime.ErrInvalidInput) {
		fmt.Fprintln(stderr, "Invalid input.")
	} else {
		fmt.Fprintf(stderr, "gammaprime: %v\n", err)
	}
	return 1
}
