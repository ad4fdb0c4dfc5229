// Package diffmap maps text found in a unified diff back to a file and a line number.
package diffmap

import (
	"bytes"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
	// LineRaw is a line of input that is not a unified diff
	LineRaw
)

// Line is one line of a hunk. Number is the new-file line for added and context lines,
// and the original-file line for removed lines.
type Line struct {
	File   string
	Number int
	Kind   LineKind
	Text   string
}

type Index struct {
	lines []Line
	files []string
}

// Parse builds an Index. Input that has no file diffs is indexed line by line with an empty file name.
func Parse(raw string) *Index {
	fileDiffs, err := diff.ParseMultiFileDiff([]byte(raw))
	if err != nil || len(fileDiffs) == 0 || !hasHunks(fileDiffs) {
		return parseRaw(raw)
	}

	idx := &Index{}
	for _, fd := range fileDiffs {
		name := fileName(fd)
		idx.files = append(idx.files, name)

		for _, h := range fd.Hunks {
			newLine := int(h.NewStartLine)
			origLine := int(h.OrigStartLine)

			for _, body := range bytes.Split(h.Body, []byte("\n")) {
				if len(body) == 0 {
					continue
				}
				text := string(body[1:])
				switch body[0] {
				case '+':
					idx.lines = append(idx.lines, Line{File: name, Number: newLine, Kind: LineAdded, Text: text})
					newLine++
				case '-':
					idx.lines = append(idx.lines, Line{File: name, Number: origLine, Kind: LineRemoved, Text: text})
					origLine++
				case ' ':
					idx.lines = append(idx.lines, Line{File: name, Number: newLine, Kind: LineContext, Text: text})
					newLine++
					origLine++
				}
			}
		}
	}

	return idx
}

func hasHunks(fileDiffs []*diff.FileDiff) bool {
	for _, fd := range fileDiffs {
		if len(fd.Hunks) > 0 {
			return true
		}
	}
	return false
}

func parseRaw(raw string) *Index {
	idx := &Index{}
	for i, text := range strings.Split(raw, "\n") {
		idx.lines = append(idx.lines, Line{Number: i + 1, Kind: LineRaw, Text: text})
	}
	return idx
}

func fileName(fd *diff.FileDiff) string {
	name := fd.NewName
	if name == "" || name == "/dev/null" {
		name = fd.OrigName
	}
	if strings.HasPrefix(name, "a/") || strings.HasPrefix(name, "b/") {
		name = name[2:]
	}
	return name
}

// Files returns file names in the order they appear in the diff.
func (x *Index) Files() []string {
	return x.files
}

func (x *Index) Lines() []Line {
	return x.lines
}

// Locate finds the line containing snippet. Added lines win over context lines, which win over removed lines.
func (x *Index) Locate(snippet string) (Line, bool) {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return Line{}, false
	}

	for _, kind := range []LineKind{LineAdded, LineRaw, LineContext, LineRemoved} {
		for _, l := range x.lines {
			if l.Kind == kind && strings.Contains(l.Text, snippet) {
				return l, true
			}
		}
	}

	return Line{}, false
}
