// SPDX-License-Identifier: MIT
package parser

import (
	"fmt"

	"gitlab.com/fisherprime/cynophobia/types"
)

type (
	// Error defines a parse error with source context.
	Error struct {
		Pos types.Position
		Msg string
	}
)

// NewError creates a new, formatted error message with the given source context.
func NewError(pos types.Position, f string, argv ...interface{}) *Error {
	return &Error{
		Pos: pos,
		Msg: fmt.Sprintf(f, argv...),
	}
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Diagnostic renders the error for a named source as `file:line:column: error: message`.
func (e *Error) Diagnostic(filename string) string {
	return fmt.Sprintf("%s:%s: error: %s", filename, e.Pos, e.Msg)
}
