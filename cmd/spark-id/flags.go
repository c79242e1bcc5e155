package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/aexoo-ai/spark-id/sparkid"
)

// configFlags are the per-call override flags shared by the id commands.
// Only flags the user actually set are passed through, so an explicit zero
// or empty value still reaches validation instead of silently falling back
// to the defaults; nothing here touches the process-wide store.
type configFlags struct {
	entropyBits     int
	alphabet        string
	caseMode        string
	separator       string
	maxPrefixLength int

	flags *pflag.FlagSet
}

func (f *configFlags) register(flags *pflag.FlagSet) {
	f.flags = flags
	flags.IntVar(&f.entropyBits, "entropy-bits", 0, "bits of randomness per id (default 72)")
	flags.StringVar(&f.alphabet, "alphabet", "", "32-symbol encoding alphabet")
	flags.StringVar(&f.caseMode, "case", "", "output casing: upper, lower or mixed")
	flags.StringVar(&f.separator, "separator", "", "prefix separator (default \"_\")")
	flags.IntVar(&f.maxPrefixLength, "max-prefix-length", 0, "maximum prefix length (default 20)")
}

func (f *configFlags) options() []sparkid.Option {
	var opts []sparkid.Option
	if f.flags.Changed("entropy-bits") {
		opts = append(opts, sparkid.WithEntropyBits(f.entropyBits))
	}
	if f.flags.Changed("alphabet") {
		opts = append(opts, sparkid.WithAlphabet(f.alphabet))
	}
	if f.flags.Changed("case") {
		opts = append(opts, sparkid.WithCase(sparkid.Case(strings.ToLower(f.caseMode))))
	}
	if f.flags.Changed("separator") {
		opts = append(opts, sparkid.WithSeparator(f.separator))
	}
	if f.flags.Changed("max-prefix-length") {
		opts = append(opts, sparkid.WithMaxPrefixLength(f.maxPrefixLength))
	}
	return opts
}
