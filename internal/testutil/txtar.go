// Package testutil provides golden-file testing utilities for go-jsarray.
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Input is the contents of "input.json".
	Input []byte

	// Want maps output names (e.g., "to_json.json") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input.json" file
//   - One or more "want/<name>" files with expected output
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == "input.json":
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.json or want/*)", f.Name)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing input.json in archive")
	}
	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	return c, nil
}

// GenerateFunc produces named outputs from the case input.
type GenerateFunc func(input []byte) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// Only outputs named by want/* files are compared.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c.Input)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for name, want := range c.Want {
		gotContent, ok := got[name]
		if !ok {
			t.Errorf("missing output: %q", name)
			continue
		}
		if diff := cmp.Diff(normalizeContent(want), normalizeContent(gotContent)); diff != "" {
			t.Errorf("output %q mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// normalizeContent trims trailing whitespace from each line and trailing
// newlines from the whole content.
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// LoadTestCases loads all txtar test cases from a directory, sorted by name.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		cases = append(cases, c)
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases
}
