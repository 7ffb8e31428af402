package main

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyjs/internal/cli"
	"github.com/matzehuels/cyjs/pkg/errors"
)

// Exit codes.
const (
	exitError    = 1   // any other failure
	exitUsage    = 2   // bad flags, config, or input data
	exitCanceled = 130 // standard shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Raise the log level once flags are parsed, then run the root's own hook.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// exitCode maps an error to the process exit status. Cobra has already
// printed the error.
func exitCode(err error) int {
	if stderrors.Is(err, context.Canceled) {
		return exitCanceled
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidConfiguration,
		errors.ErrCodeMalformedDocument,
		errors.ErrCodeFileNotFound:
		return exitUsage
	}
	return exitError
}
