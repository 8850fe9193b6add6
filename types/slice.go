// SPDX-License-Identifier: MIT
package types

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// StringSlice is the interned text table shared by a lexer's tokens.
	StringSlice []string
)

// Validation errors.
var (
	ErrInvalidIndex = errors.New("invalid index")
)

// Locate the index of val in the StringSlice, -1 when absent.
func (sl *StringSlice) Locate(val string) int { return slices.Index(*sl, val) }

// Intern appends val when absent, returning the index of its (single) entry.
func (sl *StringSlice) Intern(val string) (index int) {
	if index = sl.Locate(val); index > -1 {
		return
	}

	*sl = append(*sl, val)
	index = len(*sl) - 1

	return
}

// At obtains the entry at index.
func (sl *StringSlice) At(index int) (val string, err error) {
	if index < 0 || index >= len(*sl) {
		err = fmt.Errorf("%w: %d of %d", ErrInvalidIndex, index, len(*sl))
		return
	}
	val = (*sl)[index]

	return
}

// String is the `fmt.Stringer` interface implementation for StringSlice.
func (sl StringSlice) String() string {
	buffer := strings.Builder{}
	buffer.WriteString("[")
	for index := range sl {
		if index > 0 {
			buffer.WriteString(",")
		}
		fmt.Fprintf(&buffer, "%q", sl[index])
	}
	buffer.WriteString("]")

	return buffer.String()
}
