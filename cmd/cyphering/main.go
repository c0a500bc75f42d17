// Command cyphering expands the placeholders of a graph-schema model file and
// writes the resolved model, with its dependency sets, for code generators.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/syssam/cyphering/internal/app"
	"github.com/syssam/cyphering/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Getenv)
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and runs the app. The encoded model goes to outW, usage
// text and logs to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string, getenv func(string) string) error {
	cfg, shouldExit, err := cli.Parse(args, errW, getenv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	return app.New(outW, errW, cfg).Run(ctx)
}
