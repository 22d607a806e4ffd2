package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// build version, set via ldflags on release.
var version = "dev"

type rootOpts struct {
	quiet bool
}

func root() *rootOpts {
	return &rootOpts{}
}

func (o *rootOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "einvoice",
		Short:         "Convert standards governed electronic invoice documents into a normalized model",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if o.quiet {
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "only log errors")
	cmd.AddCommand(convert(o).cmd())
	return cmd
}

// openInput returns the input reader: the first argument when given,
// stdin otherwise.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) >= 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	}
	return io.NopCloser(cmd.InOrStdin()), nil
}

// openOutput returns the output writer: the second argument when given,
// stdout otherwise.
func openOutput(cmd *cobra.Command, args []string) (io.WriteCloser, error) {
	if len(args) >= 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return nil, fmt.Errorf("creating output: %w", err)
		}
		return f, nil
	}
	return nopWriteCloser{cmd.OutOrStdout()}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
