// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cynophobia/charstream"
	"gitlab.com/fisherprime/cynophobia/types"
)

type (
	// Lexer splits a program's source into Tokens.
	//
	// A Lexer is single use; Lex consumes its source.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger
		writer io.Writer

		source charstream.Source
		stream *charstream.Stream

		out Output
	}
)

// New creates a Lexer, defaulting to an empty source.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),
		writer: os.Stdout,
		source: charstream.NewStringSource(""),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LexFile lexes the file named by the Config.
func LexFile(cfg *Config) Output {
	cfg.Validate()

	source := charstream.OpenFile(cfg.Filename)
	defer func() {
		if err := source.Close(); err != nil {
			cfg.Logger.Warnf("close %s: %v", cfg.Filename, err)
		}
	}()

	out := New(append(cfg.Options(), WithSource(source))...).Lex()
	if err := source.Err(); err != nil {
		cfg.Logger.Debugf("lex %s: %v", cfg.Filename, err)
	}

	return out
}

// LexString lexes an in-memory program.
func LexString(src string, debug bool) Output {
	return New(WithSource(charstream.NewStringSource(src)), WithDebug(debug)).Lex()
}

// Lex scans the whole source.
//
// Scanning stops at the end of the source or on the first read error.
func (l *Lexer) Lex() Output {
	if !l.source.Opened() {
		l.out = Output{OpenFailed: true}
		l.dump()

		return l.out
	}

	l.stream = charstream.NewStream(l.source)
	for l.lexNext() {
	}

	l.dump()

	return l.out
}

// lexNext lexes a single item, reporting whether scanning should proceed.
func (l *Lexer) lexNext() bool {
	pos := l.stream.NextPosition()

	next, status := l.stream.Next()
	if status != charstream.StatusGood {
		l.out.ReadFailed = status == charstream.StatusError
		return false
	}

	switch {
	case types.Whitespace.Contains(next):
		// Discard, don't emit.
	case next == '_' || types.IsAlpha(next):
		return l.lexWord(pos, next)
	case types.IsDigit(next):
		return l.lexNumeral(pos, next)
	default:
		if tt, ok := punctuation[next]; ok {
			l.emit(pos, tt, "")
			break
		}
		l.emitUnknown(pos, string(next))
	}

	return true
}

// lexWord lexes an identifier or keyword starting with first.
func (l *Lexer) lexWord(pos types.Position, first byte) bool {
	run, status := l.stream.AcceptWhile(&types.WordChars)
	if status == charstream.StatusError {
		l.out.ReadFailed = true
		return false
	}

	word := string(first) + run
	if tt, ok := types.Keywords[word]; ok {
		l.emit(pos, tt, "")
	} else {
		l.emit(pos, types.Identifier, word)
	}

	return status == charstream.StatusGood
}

// lexNumeral lexes a numeral run starting with first.
//
// The run is made of word characters; any non-digit makes the whole run unknown.
func (l *Lexer) lexNumeral(pos types.Position, first byte) bool {
	run, status := l.stream.AcceptWhile(&types.WordChars)
	if status == charstream.StatusError {
		l.out.ReadFailed = true
		return false
	}

	numeral := string(first) + run
	if types.Digits.ContainsAll(numeral) {
		l.emit(pos, types.Constant, numeral)
	} else {
		l.emitUnknown(pos, numeral)
	}

	return status == charstream.StatusGood
}

// emit appends a Token, interning text for variable-spelling types.
func (l *Lexer) emit(pos types.Position, tt types.TokenType, text string) {
	token := types.Token{Position: pos, Type: tt}
	if _, fixed := types.Spelling(tt); !fixed {
		token.Index = l.out.Texts.Intern(text)
	}

	if l.debug {
		l.logger.Debugf("lexer emit: %s", token.DebugString(l.out.Texts))
	}

	l.out.Tokens = append(l.out.Tokens, token)
}

// emitUnknown appends an UnknownToken.
func (l *Lexer) emitUnknown(pos types.Position, text string) {
	unknown := types.UnknownToken{Position: pos, Text: text}

	if l.debug {
		l.logger.Debugf("lexer emit unknown: %s", unknown.DebugString())
	}

	l.out.UnknownTokens = append(l.out.UnknownTokens, unknown)
}

// dump writes the Output to the configured writer for debug runs.
func (l *Lexer) dump() {
	if !l.debug {
		return
	}

	if _, err := fmt.Fprintln(l.writer, l.out.String()); err != nil {
		l.logger.Warnf("lexer dump: %v", err)
	}
	l.logger.WithField("texts", l.out.Texts.String()).Debugf("lexer output: %s", spew.Sdump(l.out))
}

var punctuation = map[byte]types.TokenType{
	'(': types.OpenParen,
	')': types.CloseParen,
	'{': types.OpenBrace,
	'}': types.CloseBrace,
	';': types.Semicolon,
}
