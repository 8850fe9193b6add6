// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cynophobia"
	"gitlab.com/fisherprime/cynophobia/parser"
)

// Usage errors.
var (
	errNoInput       = errors.New("no input source file")
	errStageConflict = errors.New("only one of -lex, -parse & -codegen may be set")
	errVersion       = errors.New("version requested")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the compiler front end, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cynocc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	config, err := parseArgs(fs, args, stdout)
	switch {
	case errors.Is(err, errVersion):
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 1
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	parser.SetLogger(logger)

	cfgs := make([]*cynophobia.Config, len(config.Inputs))
	for index, input := range config.Inputs {
		cfgs[index] = &cynophobia.Config{
			Logger:   logger,
			Writer:   stdout,
			Filename: input,
			Stage:    config.Stage,
			Verbose:  config.Verbose,
		}
	}

	results, err := cynophobia.CompileAll(context.Background(), config.Workers, cfgs...)
	for _, res := range results {
		report(stderr, res)
	}
	if err != nil {
		if errors.Is(err, cynophobia.ErrStageUnsupported) {
			fmt.Fprintf(stderr, "%s: error: %s stage unsupported\n", fs.Name(), config.Stage)
		}
		logger.Debugf("%+v", err)
		return 1
	}

	return 0
}

// report writes the diagnostics of a single compilation.
func report(w io.Writer, res *cynophobia.Result) {
	if res == nil {
		return
	}

	if res.Lex.OpenFailed {
		fmt.Fprintf(w, "%s: error: could not open file\n", res.Filename)
		return
	}

	for _, unknown := range res.Lex.UnknownTokens {
		fmt.Fprintf(w, "%s:%s: error: unknown token %q\n", res.Filename, unknown.Position, unknown.Text)
	}
	if res.Lex.ReadFailed {
		fmt.Fprintf(w, "%s: error: could not read file\n", res.Filename)
	}

	if res.Parse != nil && res.Parse.Err != nil {
		fmt.Fprintln(w, res.Parse.Err.Diagnostic(res.Filename))
	}
}
