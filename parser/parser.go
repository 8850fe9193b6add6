// SPDX-License-Identifier: MIT
package parser

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cynophobia/types"
)

// Grammar:
//
//	program    = function EOF
//	function   = "int" IDENTIFIER "(" "void" ")" "{" statement "}"
//	statement  = "return" expression ";"
//	expression = CONSTANT
//
// Every rule is a pure function of (texts, tokens, index). A failed rule reports the index it
// started at, no tokens are committed on failure.

type (
	// Result holds either a parsed node & the index following it, or an Error & the starting
	// index.
	Result[T Node] struct {
		Next  int
		Value T
		Err   *Error
	}

	// Output holds either the parsed Program or the Error that aborted parsing, never both.
	Output struct {
		Program *Program
		Err     *Error
	}
)

const (
	eofExpectedToken = "reached end of file, expected token"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Failed reports whether the rule failed.
func (r Result[T]) Failed() bool { return r.Err != nil }

// Failure obtains the Output's error, nil on success.
func (o Output) Failure() error {
	if o.Err == nil {
		return nil
	}

	return o.Err
}

func succeed[T Node](next int, value T) Result[T] { return Result[T]{Next: next, Value: value} }

func fail[T Node](start int, err *Error) Result[T] { return Result[T]{Next: start, Err: err} }

// ParseProgram parses a whole token sequence into a Program.
func ParseProgram(texts types.StringSlice, tokens []types.Token) (out Output) {
	defer func() {
		if out.Err != nil {
			fLogger.WithField("tokens", len(tokens)).Debugf("parse failed: %v", out.Err)
		}
	}()

	function := ParseFunction(texts, tokens, 0)
	if function.Failed() {
		out.Err = function.Err
		return
	}

	if next := function.Next; next < len(tokens) {
		out.Err = NewError(tokens[next].Position, "expected end of file, found token %q",
			tokens[next].Text(texts))
		return
	}

	out.Program = &Program{Function: function.Value}

	return
}

// ParseFunction parses `int <name>(void) { <statement> }` starting at index.
func ParseFunction(texts types.StringSlice, tokens []types.Token, index int) Result[*Function] {
	if err := checkIndex(texts, tokens, index); err != nil {
		return fail[*Function](index, err)
	}

	fn := &Function{}

	signature := []struct {
		dst *types.Token
		tt  types.TokenType
	}{
		{&fn.TypeToken, types.Int},
		{&fn.IdentifierToken, types.Identifier},
		{&fn.OpenParenToken, types.OpenParen},
		{&fn.VoidToken, types.Void},
		{&fn.CloseParenToken, types.CloseParen},
		{&fn.OpenBraceToken, types.OpenBrace},
	}

	next := index
	for _, expected := range signature {
		token, err := expect(texts, tokens, next, expected.tt, "in function definition")
		if err != nil {
			return fail[*Function](index, err)
		}
		*expected.dst = token
		next++
	}

	body := ParseStatement(texts, tokens, next)
	if body.Failed() {
		return fail[*Function](index, body.Err)
	}
	fn.Body = body.Value
	next = body.Next

	token, err := expect(texts, tokens, next, types.CloseBrace, "after function body")
	if err != nil {
		return fail[*Function](index, err)
	}
	fn.CloseBraceToken = token

	return succeed(next+1, fn)
}

// ParseStatement parses a return statement starting at index.
func ParseStatement(texts types.StringSlice, tokens []types.Token, index int) Result[Statement] {
	if err := checkIndex(texts, tokens, index); err != nil {
		return fail[Statement](index, err)
	}
	if index >= len(tokens) {
		return fail[Statement](index, NewError(positionAt(texts, tokens, index), eofExpectedToken))
	}

	lead := tokens[index]
	if lead.Type != types.Return {
		return fail[Statement](index, NewError(lead.Position,
			"expected return statement, found token %q", lead.Text(texts)))
	}

	expression := ParseExpression(texts, tokens, index+1)
	if expression.Failed() {
		return fail[Statement](index, expression.Err)
	}

	next := expression.Next
	if next >= len(tokens) {
		return fail[Statement](index, NewError(positionAt(texts, tokens, next),
			"reached end of file, expected semicolon after expression"))
	}

	semicolon := tokens[next]
	if semicolon.Type != types.Semicolon {
		return fail[Statement](index, NewError(semicolon.Position,
			"expected semicolon after expression, found token %q at token index %d",
			semicolon.Text(texts), next))
	}

	return succeed[Statement](next+1, &Return{
		ReturnToken:    lead,
		Expression:     expression.Value,
		SemicolonToken: semicolon,
	})
}

// ParseExpression parses a constant expression starting at index.
func ParseExpression(texts types.StringSlice, tokens []types.Token, index int) Result[Expression] {
	if err := checkIndex(texts, tokens, index); err != nil {
		return fail[Expression](index, err)
	}
	if index >= len(tokens) {
		return fail[Expression](index, NewError(positionAt(texts, tokens, index), eofExpectedToken))
	}

	token := tokens[index]
	if token.Type != types.Constant {
		return fail[Expression](index, NewError(token.Position,
			"expected constant token, found other token %q", token.Text(texts)))
	}

	return succeed[Expression](index+1, &IntConstant{Value: token})
}

// expect obtains the token at index, failing when it isn't of type tt.
func expect(texts types.StringSlice, tokens []types.Token, index int, tt types.TokenType, context string) (token types.Token, err *Error) {
	if index >= len(tokens) {
		err = NewError(positionAt(texts, tokens, index), "reached end of file, expected %s %s",
			describe(tt), context)
		return
	}

	if token = tokens[index]; token.Type != tt {
		err = NewError(token.Position, "expected %s %s, found token %q", describe(tt), context,
			token.Text(texts))
	}

	return
}

// checkIndex rejects negative token indices.
func checkIndex(texts types.StringSlice, tokens []types.Token, index int) *Error {
	if index >= 0 {
		return nil
	}

	return NewError(positionAt(texts, tokens, index), "invalid token index %d", index)
}

// describe names a TokenType for error messages.
func describe(tt types.TokenType) string {
	if spelling, ok := types.Spelling(tt); ok {
		return fmt.Sprintf("%q", spelling)
	}

	switch tt {
	case types.Identifier:
		return "identifier"
	case types.Constant:
		return "constant"
	}

	return tt.String()
}

// positionAt obtains the position of the token at index.
//
// Past the end of tokens, the position following the last token's text is projected; a negative
// index maps to the first token.
func positionAt(texts types.StringSlice, tokens []types.Token, index int) types.Position {
	if index < 0 {
		index = 0
	}
	if index < len(tokens) {
		return tokens[index].Position
	}
	if len(tokens) == 0 {
		return types.Position{}
	}

	last := tokens[len(tokens)-1]

	return last.Position.AdvanceText(last.Text(texts))
}
