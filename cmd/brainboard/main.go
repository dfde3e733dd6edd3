// Command brainboard is the command line front end for brainstorming boards.
//
// Exit codes: 0 = success, 1 = error, 2 = invalid input, 3 = unknown
// reference, 4 = no current user, 5 = conflict.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/heartmarshall/brainboard/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		code := cli.PrintError(os.Stderr, err)
		stop()
		os.Exit(code)
	}
}
