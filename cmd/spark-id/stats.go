package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aexoo-ai/spark-id/sparkid"
)

type statsOptions struct {
	format string
	cfg    configFlags
}

// NewStatsCommand builds the stats subcommand.
func NewStatsCommand() *cobra.Command {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the derived properties of the active configuration",
		Args:  cobra.NoArgs,
		RunE:  opts.run,
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text or json")
	opts.cfg.register(cmd.Flags())

	return cmd
}

func (o *statsOptions) run(cmd *cobra.Command, _ []string) error {
	stats, err := sparkid.GetStats(o.cfg.options()...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch o.format {
	case formatText:
		fmt.Fprintf(w, "entropy bits:      %d\n", stats.EntropyBits)
		fmt.Fprintf(w, "byte length:       %d\n", stats.ByteLength)
		fmt.Fprintf(w, "raw length:        %d\n", stats.RawLength)
		fmt.Fprintf(w, "raw length range:  %d-%d\n", stats.MinRawLength, stats.MaxRawLength)
		fmt.Fprintf(w, "alphabet size:     %d\n", stats.AlphabetSize)
		fmt.Fprintf(w, "alphabet:          %s\n", stats.Alphabet)
		fmt.Fprintf(w, "separator:         %s\n", stats.Separator)
		fmt.Fprintf(w, "case:              %s\n", stats.Case)
		fmt.Fprintf(w, "max prefix length: %d\n", stats.MaxPrefixLength)
		fmt.Fprintf(w, "combinations:      %.4g\n", stats.Combinations)
		return nil
	case formatJSON:
		return renderJSON(w, stats)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", o.format)
	}
}
