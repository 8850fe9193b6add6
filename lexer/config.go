// SPDX-License-Identifier: MIT
package lexer

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the LexFile operation.
	Config struct {
		Logger logrus.FieldLogger

		// Writer receives the Output dump when Debug is set.
		Writer io.Writer

		Filename string
		Debug    bool
	}
)

// DefaultConfig obtains the package's default Config.
func DefaultConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Writer: os.Stdout,
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
}

// Options converts the Config into Lexer functional options, excluding the source.
func (c *Config) Options() []Option {
	return []Option{WithLogger(c.Logger), WithWriter(c.Writer), WithDebug(c.Debug)}
}
