// SPDX-License-Identifier: MIT
package types

import "fmt"

type (
	// TokenType identifies the category of a lexed Token.
	TokenType int

	// Token is a classified lexical unit.
	//
	// Index references the interned text of Identifier & Constant tokens; tokens with a fixed
	// spelling don't store text.
	Token struct {
		Position Position
		Index    int
		Type     TokenType
	}

	// UnknownToken is a lexical item that couldn't be classified.
	UnknownToken struct {
		Position Position
		Text     string
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_          TokenType = iota // Consume 0 to start actual numbering at 1.
	Identifier                  // [A-Za-z_][A-Za-z0-9_]*
	Constant                    // [0-9]+
	Int                         // "int"
	Void                        // "void"
	Return                      // "return"
	OpenParen                   // '('
	CloseParen                  // ')'
	OpenBrace                   // '{'
	CloseBrace                  // '}'
	Semicolon                   // ';'
)

var tokenNames = [...]string{
	Identifier: "Identifier",
	Constant:   "Constant",
	Int:        "Int",
	Void:       "Void",
	Return:     "Return",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
	OpenBrace:  "OpenBrace",
	CloseBrace: "CloseBrace",
	Semicolon:  "Semicolon",
}

var spellings = [...]string{
	Int:        "int",
	Void:       "void",
	Return:     "return",
	OpenParen:  "(",
	CloseParen: ")",
	OpenBrace:  "{",
	CloseBrace: "}",
	Semicolon:  ";",
}

// Keywords maps reserved words to their TokenType.
var Keywords = map[string]TokenType{
	"int":    Int,
	"void":   Void,
	"return": Return,
}

// String is the `fmt.Stringer` implementation for TokenType.
func (tt TokenType) String() string {
	if tt > 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}

	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Spelling obtains the fixed spelling of a TokenType.
//
// ok is false for types whose text varies per token (Identifier & Constant).
func Spelling(tt TokenType) (spelling string, ok bool) {
	if tt > 0 && int(tt) < len(spellings) {
		spelling = spellings[tt]
	}
	ok = spelling != ""

	return
}

// Text resolves the Token's spelling, looking up variable spellings in texts.
func (t Token) Text(texts StringSlice) string {
	if spelling, ok := Spelling(t.Type); ok {
		return spelling
	}

	text, err := texts.At(t.Index)
	if err != nil {
		return ""
	}

	return text
}

// DebugString renders the Token for lexer dumps.
func (t Token) DebugString(texts StringSlice) string {
	return fmt.Sprintf("{'position': %s, 'text': %q, 'token_type': '%s'}",
		t.Position.DebugString(), t.Text(texts), t.Type)
}

// DebugString renders the UnknownToken for lexer dumps.
func (u UnknownToken) DebugString() string {
	return fmt.Sprintf("{'position': %s, 'text': %q}", u.Position.DebugString(), u.Text)
}
