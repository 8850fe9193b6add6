// SPDX-License-Identifier: MIT
package cynophobia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestCompileAll(t *testing.T) {
	paths := writeSources(t, map[string]string{
		"a.c": "int main(void) { return 1; }",
		"b.c": "int main(void) { return 2; }",
		"c.c": "int main(void) { return; }",
	})

	config := func(name string) *Config {
		return &Config{Logger: quietLogger(), Writer: io.Discard, Filename: paths[name], Stage: StageParse}
	}

	tests := []struct {
		name     string
		files    []string
		workers  int
		wantErrs []error
	}{
		{name: "all valid", files: []string{"a.c", "b.c"}, workers: 2},
		{name: "default workers", files: []string{"a.c", "b.c", "a.c"}},
		{name: "single worker", files: []string{"a.c", "c.c", "b.c"}, workers: 1, wantErrs: []error{ErrSyntax}},
		{
			name:     "several failures",
			files:    []string{"missing.c", "b.c", "c.c"},
			workers:  3,
			wantErrs: []error{ErrOpenFailed, ErrSyntax},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgs := make([]*Config, len(tt.files))
			for index, file := range tt.files {
				cfgs[index] = config(file)
			}

			results, err := CompileAll(context.Background(), tt.workers, cfgs...)
			if (err != nil) != (len(tt.wantErrs) > 0) {
				t.Fatalf("CompileAll() error = %v, wantErr %v", err, tt.wantErrs)
			}
			for _, wantErr := range tt.wantErrs {
				if !errors.Is(err, wantErr) {
					t.Errorf("CompileAll() error = %v, want it to wrap %v", err, wantErr)
				}
			}

			if len(results) != len(cfgs) {
				t.Fatalf("CompileAll() results = %d, want %d", len(results), len(cfgs))
			}
			for index, res := range results {
				if res == nil || res.Filename != cfgs[index].Filename {
					t.Errorf("CompileAll() results[%d] = %v, want %s", index, res, cfgs[index].Filename)
				}
			}
		})
	}
}

func TestCompileAll_NoSources(t *testing.T) {
	if _, err := CompileAll(context.Background(), 1); !errors.Is(err, ErrNoSources) {
		t.Errorf("CompileAll() error = %v, want %v", err, ErrNoSources)
	}
}

func TestCompileAll_VerboseOrder(t *testing.T) {
	const count = 8

	sources := make(map[string]string, count)
	for index := 0; index < count; index++ {
		sources[fmt.Sprintf("f%d.c", index)] = fmt.Sprintf("int fn%d(void) { return %d; }", index, index)
	}
	paths := writeSources(t, sources)

	var buffer bytes.Buffer
	cfgs := make([]*Config, count)
	for index := range cfgs {
		cfgs[index] = &Config{
			Logger:   quietLogger(),
			Writer:   &buffer,
			Filename: paths[fmt.Sprintf("f%d.c", index)],
			Stage:    StageLex,
			Verbose:  true,
		}
	}

	if _, err := CompileAll(context.Background(), 4, cfgs...); err != nil {
		t.Fatalf("CompileAll() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	if len(lines) != count {
		t.Fatalf("CompileAll() dumped %d lines, want %d", len(lines), count)
	}
	for index, line := range lines {
		if want := fmt.Sprintf(`'text': "fn%d"`, index); !strings.Contains(line, want) {
			t.Errorf("dump line %d = %s, want it to contain %s", index, line, want)
		}
	}
}
