package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/assets"
)

// newStylesFlagSet registers the styles command flags.
func newStylesFlagSet(f *assetFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	addAssetFlags(fs, f)
	return fs
}

// runStylesCmd lists the style names --style accepts.
func runStylesCmd(args []string, env *Environment) int {
	var f assetFlags
	fs := newStylesFlagSet(&f)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	resolver, err := assets.NewAssetResolver(f.assetPath)
	if err != nil {
		err = fmt.Errorf("%w: %v", chatmd.ErrInvalidAssetPath, err)
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	names, err := resolver.ListStyles()
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitIO
	}

	for _, name := range names {
		if name == chatmd.DefaultStyle {
			fmt.Fprintf(env.Stdout, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(env.Stdout, name)
	}
	return ExitSuccess
}
