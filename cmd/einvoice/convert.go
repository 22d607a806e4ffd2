package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/invopop/einvoice/ubl"
)

type convertOpts struct {
	*rootOpts
}

func convert(o *rootOpts) *convertOpts {
	return &convertOpts{rootOpts: o}
}

func (c *convertOpts) cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <infile> [outfile]",
		Short: "Convert a UBL invoice document into the normalized JSON invoice model",
		Args:  cobra.MaximumNArgs(2),
		RunE:  c.runE,
	}
}

func (c *convertOpts) runE(cmd *cobra.Command, args []string) error {
	input, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close() // nolint:errcheck

	out, err := openOutput(cmd, args)
	if err != nil {
		return err
	}
	defer out.Close() // nolint:errcheck

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	inv, err := ubl.NewReader().ReadInvoice(data)
	if err != nil {
		return fmt.Errorf("reading invoice: %w", err)
	}

	if inv.Specification != nil && inv.Preset == nil {
		log.Warn().
			Str("specification", *inv.Specification).
			Msg("specification matched no known preset, using generic model")
	}

	outData, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("generating JSON output: %w", err)
	}

	if _, err := out.Write(append(outData, '\n')); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
