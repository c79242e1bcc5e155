package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aexoo-ai/spark-id/sparkid"
)

type parseOptions struct {
	format string
	cfg    configFlags
}

// NewParseCommand builds the parse subcommand.
func NewParseCommand() *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <id>",
		Short: "Split an identifier into prefix, raw id, and full form",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run,
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text or json")
	opts.cfg.register(cmd.Flags())

	return cmd
}

func (o *parseOptions) run(cmd *cobra.Command, args []string) error {
	parsed, err := sparkid.Parse(args[0], o.cfg.options()...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch o.format {
	case formatText:
		if parsed.Prefix != "" {
			fmt.Fprintf(w, "prefix: %s\n", parsed.Prefix)
		}
		fmt.Fprintf(w, "id:     %s\n", parsed.ID)
		fmt.Fprintf(w, "full:   %s\n", parsed.Full)
		return nil
	case formatJSON:
		return renderJSON(w, parsed)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", o.format)
	}
}
