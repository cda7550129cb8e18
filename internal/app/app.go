// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pairwalk/internal/appcore"
	"pairwalk/internal/cli"
	"pairwalk/internal/cmdutil"
)

// RunContext parses argv, runs pairwalk, and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	opts := cli.Defaults()
	code := appcore.ExitOK

	cmd := cli.NewRootCommand(&opts, func(cmd *cobra.Command) error {
		log, _ := cmdutil.NewLogger(stderr, opts.Verbose, opts.Quiet)
		log.Debug("options", "opts", opts.String())
		code = appcore.Run(cmd.Context(), stdout, stderr, toCore(opts), log)
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		var ue *cli.UsageError
		if errors.As(err, &ue) {
			_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		}
		return appcore.ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func toCore(o cli.Options) appcore.Options {
	return appcore.Options{
		GraphFile:     o.GraphFile,
		MappingFile:   o.MappingFile,
		MaxDistance:   o.MaxDistance,
		MaxSteps:      o.MaxSteps,
		Threads:       o.Threads,
		ProgressEvery: o.ProgressEvery,
		OutFile:       o.OutFile,
		Unconnected:   o.Unconnected,
		Format:        o.Output,
		MetricsFile:   o.MetricsFile,
		Quiet:         o.Quiet,
	}
}
