// SPDX-License-Identifier: MIT
package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestStringSlice_Intern(t *testing.T) {
	var sl StringSlice

	gotIndices := []int{sl.Intern("main"), sl.Intern("100"), sl.Intern("main"), sl.Intern("x")}
	wantIndices := []int{0, 1, 0, 2}

	if !reflect.DeepEqual(gotIndices, wantIndices) {
		t.Errorf("StringSlice.Intern() = %v, want %v", gotIndices, wantIndices)
	}
	if want := (StringSlice{"main", "100", "x"}); !reflect.DeepEqual(sl, want) {
		t.Errorf("StringSlice = %v, want %v", sl, want)
	}
}

func TestStringSlice_At(t *testing.T) {
	sl := StringSlice{"a"}

	if got, err := sl.At(0); err != nil || got != "a" {
		t.Errorf("StringSlice.At(0) = (%q, %v), want (%q, nil)", got, err, "a")
	}
	if _, err := sl.At(1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("StringSlice.At(1) error = %v, want %v", err, ErrInvalidIndex)
	}
	if _, err := sl.At(-1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("StringSlice.At(-1) error = %v, want %v", err, ErrInvalidIndex)
	}
}

func TestStringSlice_String(t *testing.T) {
	if got, want := (StringSlice{"main", "100"}).String(), `["main","100"]`; got != want {
		t.Errorf("StringSlice.String() = %s, want %s", got, want)
	}
}

func TestCharset(t *testing.T) {
	if !WordChars.ContainsAll("_main100") {
		t.Error("WordChars should hold identifier bytes")
	}
	if WordChars.Contains('$') || WordChars.Contains(' ') {
		t.Error("WordChars should not hold punctuation or whitespace")
	}
	if Digits.ContainsAll("1a2") {
		t.Error(`Digits.ContainsAll("1a2") = true`)
	}
	for _, b := range []byte(" \t\n\r\v\f") {
		if !Whitespace.Contains(b) {
			t.Errorf("Whitespace.Contains(%q) = false", b)
		}
	}
}
