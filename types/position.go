// SPDX-License-Identifier: MIT
package types

import "fmt"

type (
	// Position is a zero-based line & column within a source.
	//
	// Values are immutable, use NextColumn, StartNextLine or Advance to obtain the following
	// position.
	Position struct {
		Line   uint
		Column uint
	}
)

// NextColumn obtains the position one column to the right.
func (p Position) NextColumn() Position { return Position{Line: p.Line, Column: p.Column + 1} }

// StartNextLine obtains the first column of the following line.
func (p Position) StartNextLine() Position { return Position{Line: p.Line + 1} }

// Advance obtains the position following the consumed byte c.
//
// follow is the byte after c, hasFollow is false when no such byte could be read. A '\r'
// directly followed by '\n' only advances the column, the '\n' then ends the line; this records
// the pair as a single line break.
func (p Position) Advance(c, follow byte, hasFollow bool) Position {
	switch c {
	case '\n', '\v', '\f':
		return p.StartNextLine()
	case '\r':
		if hasFollow && follow == '\n' {
			return p.NextColumn()
		}

		return p.StartNextLine()
	default:
		return p.NextColumn()
	}
}

// AdvanceText obtains the position following every byte in text, starting at p.
func (p Position) AdvanceText(text string) Position {
	for index := 0; index < len(text); index++ {
		hasFollow := index+1 < len(text)

		var follow byte
		if hasFollow {
			follow = text[index+1]
		}
		p = p.Advance(text[index], follow, hasFollow)
	}

	return p
}

// String renders the position as `line:column`.
func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// DebugString renders the position for lexer dumps.
func (p Position) DebugString() string {
	return fmt.Sprintf("{'line': %d, 'column': %d}", p.Line, p.Column)
}
