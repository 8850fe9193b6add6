// SPDX-License-Identifier: MIT
package main

import (
	"flag"
	"fmt"
	"io"

	"gitlab.com/fisherprime/cynophobia"
)

// Config defines program configuration.
type Config struct {
	Inputs  []string         // Source files to compile.
	Stage   cynophobia.Stage // Last stage to run.
	Verbose bool             // Dump lexer output & log debug messages.
	Workers int              // Number of files compiled concurrently.
}

// parseArgs parses command line arguments as applicable.
//
// Usage errors are returned. When version information is requested, it is printed to stdout &
// errVersion is returned.
func parseArgs(fs *flag.FlagSet, args []string, stdout io.Writer) (*Config, error) {
	c := Config{Stage: cynophobia.StageLink, Workers: 1}

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s [options] <input source file>...\n", fs.Name())
		fs.PrintDefaults()
	}

	lex := fs.Bool("lex", false, "Stop after lexing.")
	parse := fs.Bool("parse", false, "Stop after parsing.")
	codegen := fs.Bool("codegen", false, "Stop after code generation.")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "Print the lexer output & debug messages.")
	fs.IntVar(&c.Workers, "j", c.Workers, "Number of files to compile concurrently, ignored with -v.")
	version := fs.Bool("version", false, "Display version information.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *version {
		fmt.Fprintln(stdout, Version())
		return nil, errVersion
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return nil, errNoInput
	}

	selected := 0
	for stage, set := range map[cynophobia.Stage]bool{
		cynophobia.StageLex:     *lex,
		cynophobia.StageParse:   *parse,
		cynophobia.StageCodegen: *codegen,
	} {
		if set {
			c.Stage = stage
			selected++
		}
	}
	if selected > 1 {
		return nil, errStageConflict
	}

	c.Inputs = fs.Args()

	return &c, nil
}
