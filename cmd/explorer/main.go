package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
)

const version = "0.1.0"

func main() {
	if err := execute(context.Background(), &app{}, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs the command line and releases what setup acquired, whether or
// not the command succeeded.
func execute(ctx context.Context, a *app, args []string) error {
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)

	return fang.Execute(
		ctx,
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
}
