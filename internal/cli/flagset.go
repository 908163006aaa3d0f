package cli

import (
	"flag"

	"samplereport/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet with the grouped help screen
// installed as its Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name)
	return fs
}
