// SPDX-License-Identifier: MIT
package lexer

import (
	"strings"

	"gitlab.com/fisherprime/cynophobia/types"
)

type (
	// Output holds the result of a lex operation.
	//
	// OpenFailed implies empty sequences & a false ReadFailed. ReadFailed & UnknownTokens are
	// independent, tokens lexed before a read failure are kept.
	Output struct {
		// Texts is the interned text of Identifier & Constant tokens.
		Texts types.StringSlice

		Tokens        []types.Token
		UnknownTokens []types.UnknownToken

		ReadFailed bool
		OpenFailed bool
	}
)

// Failed reports whether the source couldn't be fully read.
func (o *Output) Failed() bool { return o.OpenFailed || o.ReadFailed }

// TokenTypes lists the type of every token in order.
func (o *Output) TokenTypes() (list []types.TokenType) {
	list = make([]types.TokenType, len(o.Tokens))
	for index := range o.Tokens {
		list[index] = o.Tokens[index].Type
	}

	return
}

// TokenText resolves the text of the token at index.
func (o *Output) TokenText(index int) string { return o.Tokens[index].Text(o.Texts) }

// String renders a human-readable dump of the Output.
func (o *Output) String() string {
	var buffer strings.Builder

	buffer.WriteString("{'open_failed': ")
	buffer.WriteString(boolString(o.OpenFailed))
	buffer.WriteString(", 'read_failed': ")
	buffer.WriteString(boolString(o.ReadFailed))

	buffer.WriteString(", 'tokens': [")
	for index := range o.Tokens {
		if index > 0 {
			buffer.WriteString(", ")
		}
		buffer.WriteString(o.Tokens[index].DebugString(o.Texts))
	}

	buffer.WriteString("], 'unknown_tokens': [")
	for index := range o.UnknownTokens {
		if index > 0 {
			buffer.WriteString(", ")
		}
		buffer.WriteString(o.UnknownTokens[index].DebugString())
	}
	buffer.WriteString("]}")

	return buffer.String()
}

func boolString(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
