// SPDX-License-Identifier: MIT
package cynophobia

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cynophobia/lexer"
	"gitlab.com/fisherprime/cynophobia/parser"
)

type (
	// Stage identifies how far a compilation proceeds.
	Stage int

	// Config defines configuration options for a Compile operation.
	Config struct {
		// Logger for compilation messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger

		// Writer receives the lexer dump when Verbose is set.
		Writer io.Writer

		Filename string
		Stage    Stage
		Verbose  bool
	}

	// Result holds the artifacts of a Compile operation.
	//
	// Parse is nil when compilation stopped before parsing.
	Result struct {
		Filename string
		Lex      lexer.Output
		Parse    *parser.Output
	}
)

const (
	_ Stage = iota
	StageLex
	StageParse
	StageCodegen
	StageLink
)

// Compilation errors.
var (
	ErrOpenFailed       = stderrors.New("failed to open source")
	ErrReadFailed       = stderrors.New("failed to read source")
	ErrUnknownTokens    = stderrors.New("unknown tokens")
	ErrSyntax           = stderrors.New("syntax error")
	ErrStageUnsupported = stderrors.New("stage unsupported")
)

var stageNames = [...]string{
	StageLex:     "lex",
	StageParse:   "parse",
	StageCodegen: "codegen",
	StageLink:    "link",
}

// String is the `fmt.Stringer` implementation for Stage.
func (s Stage) String() string {
	if s > 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}

	return fmt.Sprintf("Stage(%d)", int(s))
}

// DefaultConfig obtains the package's default Config.
func DefaultConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Writer: os.Stdout,
		Stage:  StageLink,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Writer == nil {
		c.Writer = os.Stdout
	}
	if c.Stage < StageLex || c.Stage > StageLink {
		c.Stage = StageLink
	}
}

// Compile runs the front end over the configured file up to the configured Stage.
//
// The returned Result holds whatever was produced before a failure.
func Compile(ctx context.Context, cfg *Config) (res *Result, err error) {
	cfg.Validate()
	res = &Result{Filename: cfg.Filename}

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	logger := cfg.Logger.WithField("file", cfg.Filename)

	res.Lex = lexer.LexFile(&lexer.Config{
		Logger:   cfg.Logger,
		Writer:   cfg.Writer,
		Filename: cfg.Filename,
		Debug:    cfg.Verbose,
	})

	switch {
	case res.Lex.OpenFailed:
		err = errors.Wrapf(ErrOpenFailed, "%s", cfg.Filename)
		return
	case res.Lex.ReadFailed:
		err = errors.Wrapf(ErrReadFailed, "%s", cfg.Filename)
		return
	case len(res.Lex.UnknownTokens) > 0:
		for _, unknown := range res.Lex.UnknownTokens {
			logger.WithField("position", unknown.Position.String()).Debugf("unknown token %q", unknown.Text)
		}
		err = errors.Wrapf(ErrUnknownTokens, "%s: %d", cfg.Filename, len(res.Lex.UnknownTokens))
		return
	}
	logger.Debugf("lexed %d tokens", len(res.Lex.Tokens))

	if cfg.Stage == StageLex {
		return
	}

	parsed := parser.ParseProgram(res.Lex.Texts, res.Lex.Tokens)
	res.Parse = &parsed
	if parsed.Err != nil {
		err = errors.Wrapf(fmt.Errorf("%w: %w", ErrSyntax, parsed.Err), "%s", cfg.Filename)
		return
	}
	if cfg.Verbose {
		logger.Debugf("parsed:\n%s", parsed.Program.Tree(res.Lex.Texts))
	}

	if cfg.Stage == StageParse {
		return
	}

	err = errors.Wrapf(ErrStageUnsupported, "%s: %s", cfg.Filename, cfg.Stage)

	return
}
