// SPDX-License-Identifier: MIT
package charstream

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

// readAll drains a Source, returning the bytes read & the terminal status.
func readAll(s Source) (string, Status) {
	var sb strings.Builder
	for {
		peeked, peekStatus := s.Peek()
		got, status := s.Get()
		if peekStatus != status || peeked != got {
			return sb.String(), StatusError
		}
		if status != StatusGood {
			return sb.String(), status
		}
		sb.WriteByte(got)
	}
}

func TestStringSource(t *testing.T) {
	s := NewStringSource("ab")

	if !s.Opened() {
		t.Fatal("StringSource.Opened() = false")
	}

	got, status := readAll(s)
	if got != "ab" || status != StatusEnd {
		t.Errorf("readAll() = (%q, %v), want (%q, %v)", got, status, "ab", StatusEnd)
	}

	// Reading past the end keeps reporting the end.
	for index := 0; index < 3; index++ {
		if _, status := s.Get(); status != StatusEnd {
			t.Errorf("StringSource.Get() past end = %v, want %v", status, StatusEnd)
		}
		if _, status := s.Peek(); status != StatusEnd {
			t.Errorf("StringSource.Peek() past end = %v, want %v", status, StatusEnd)
		}
	}

	if err := s.Close(); err != nil {
		t.Errorf("StringSource.Close() error = %v", err)
	}
}

func TestReaderSource(t *testing.T) {
	errBroken := errors.New("broken pipe")

	tests := []struct {
		name       string
		reader     io.Reader
		want       string
		wantStatus Status
		wantErr    bool
	}{
		{
			name:       "complete",
			reader:     strings.NewReader("int main"),
			want:       "int main",
			wantStatus: StatusEnd,
		},
		{
			name:       "one byte reads",
			reader:     iotest.OneByteReader(strings.NewReader("{ }")),
			want:       "{ }",
			wantStatus: StatusEnd,
		},
		{
			name:       "failure after data",
			reader:     io.MultiReader(strings.NewReader("ret"), iotest.ErrReader(errBroken)),
			want:       "ret",
			wantStatus: StatusError,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewReaderSource(tt.reader)
			if !s.Opened() {
				t.Fatal("ReaderSource.Opened() = false")
			}

			got, status := readAll(s)
			if got != tt.want || status != tt.wantStatus {
				t.Errorf("readAll() = (%q, %v), want (%q, %v)", got, status, tt.want, tt.wantStatus)
			}
			if (s.Err() != nil) != tt.wantErr {
				t.Errorf("ReaderSource.Err() = %v, wantErr %v", s.Err(), tt.wantErr)
			}
			if tt.wantErr && !errors.Is(s.Err(), errBroken) {
				t.Errorf("ReaderSource.Err() = %v, want it to wrap %v", s.Err(), errBroken)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()

	filename := filepath.Join(dir, "main.c")
	if err := os.WriteFile(filename, []byte("int main(void) { return 2; }\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("existing", func(t *testing.T) {
		s := OpenFile(filename)
		defer s.Close()

		if !s.Opened() {
			t.Fatalf("OpenFile().Opened() = false, err %v", s.Err())
		}
		got, status := readAll(s)
		if got != "int main(void) { return 2; }\n" || status != StatusEnd {
			t.Errorf("readAll() = (%q, %v)", got, status)
		}
		if err := s.Close(); err != nil {
			t.Errorf("ReaderSource.Close() error = %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		s := OpenFile(filepath.Join(dir, "missing.c"))

		if s.Opened() {
			t.Fatal("OpenFile().Opened() = true for a missing file")
		}
		if !errors.Is(s.Err(), os.ErrNotExist) {
			t.Errorf("OpenFile().Err() = %v, want %v", s.Err(), os.ErrNotExist)
		}
		if _, status := s.Get(); status != StatusError {
			t.Errorf("ReaderSource.Get() = %v, want %v", status, StatusError)
		}
		if err := s.Close(); err != nil {
			t.Errorf("ReaderSource.Close() error = %v", err)
		}
	})
}
