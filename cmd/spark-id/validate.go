package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aexoo-ai/spark-id/sparkid"
)

type validateOptions struct {
	cfg configFlags
}

// NewValidateCommand builds the validate subcommand. It prints one line
// per argument and exits non-zero when any id fails validation.
func NewValidateCommand() *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate <id> [<id>...]",
		Short: "Check whether identifiers are well formed",
		Args:  cobra.MinimumNArgs(1),
		RunE:  opts.run,
	}

	opts.cfg.register(cmd.Flags())

	return cmd
}

func (o *validateOptions) run(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	sparkOpts := o.cfg.options()

	invalid := 0
	for _, id := range args {
		if sparkid.IsValid(id, sparkOpts...) {
			fmt.Fprintf(w, "%s\tvalid\n", id)
		} else {
			fmt.Fprintf(w, "%s\tinvalid\n", id)
			invalid++
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d ids invalid", invalid, len(args))
	}
	return nil
}
