package main

import (
	"github.com/spf13/cobra"

	"github.com/aexoo-ai/spark-id/sparkid"
)

type generateOptions struct {
	count  int
	unique bool
	prefix string
	format string
	cfg    configFlags
}

// NewGenerateCommand builds the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more identifiers",
		Long:  "Generate cryptographically random identifiers, optionally prefixed and deduplicated.",
		Args:  cobra.NoArgs,
		RunE:  opts.run,
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", 1, "number of ids to generate (max 1000)")
	flags.BoolVar(&opts.unique, "unique", false, "retry duplicates so every id is distinct")
	flags.StringVarP(&opts.prefix, "prefix", "p", "", "prefix joined to each id")
	flags.StringVarP(&opts.format, "format", "f", formatText, "output format: text, json or csv")
	opts.cfg.register(cmd.Flags())

	return cmd
}

func (o *generateOptions) run(cmd *cobra.Command, _ []string) error {
	cfgOpts := o.cfg.options()

	var (
		ids []string
		err error
	)
	switch {
	case o.unique:
		ids, err = sparkid.GenerateUnique(o.count, o.prefix, cfgOpts...)
	case o.count == 1:
		var id string
		id, err = sparkid.Generate(o.prefix, cfgOpts...)
		ids = []string{id}
	default:
		ids, err = sparkid.GenerateMultiple(o.count, o.prefix, cfgOpts...)
	}
	if err != nil {
		return err
	}

	return renderIDs(cmd.OutOrStdout(), ids, o.format)
}
