// internal/cli/command.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pairwalk/internal/version"
)

// UsageError marks errors caused by the command line or config file, as
// opposed to errors raised while running.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return err
	}
	return &UsageError{Err: err}
}

// NewRootCommand builds a fresh pairwalk command bound to o. run is called
// with fully merged, validated and finalized options.
func NewRootCommand(o *Options, run func(cmd *cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairwalk [flags] GRAPH.asqg MAPPING.gmap",
		Short: "Resolve paired-end fragments by walking a read-overlap graph",
		Long: `pairwalk searches a string graph for the walk connecting the two mates of
each read pair. A pair connected by exactly one walk is written as a single
merged sequence; any other pair is written as its two original reads.`,
		Example: `  # merged fragments to reads.connect.fa
  pairwalk reads.asqg reads.gmap

  # 8 workers, tighter bound, unresolved reads kept aside
  pairwalk -t 8 -d 150 --unconnected reads.single.fa reads.asqg reads.gmap.gz

  # JSONL to stdout
  pairwalk --output jsonl -o - reads.asqg reads.gmap | head`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usage(fmt.Errorf("want GRAPH and MAPPING arguments, got %d", len(args)))
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			o.GraphFile, o.MappingFile = args[0], args[1]
			if err := ApplyConfig(cmd.Flags(), o); err != nil {
				return usage(err)
			}
			if err := Validate(*o); err != nil {
				return usage(err)
			}
			o.Finalize()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	cmd.SetVersionTemplate("pairwalk version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })
	RegisterFlags(cmd.Flags(), o)
	return cmd
}
