// SPDX-License-Identifier: MIT
package lexer

import (
	"io"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cynophobia/charstream"
)

type (
	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithWriter configures the destination of the debug dump.
func WithWriter(w io.Writer) Option { return func(l *Lexer) { l.writer = w } }

// WithSource configures the source option.
func WithSource(source charstream.Source) Option { return func(l *Lexer) { l.source = source } }
