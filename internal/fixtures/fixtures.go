// Package fixtures loads input/expected-output test corpora stored in the
// dot-delimited fixture format: an optional leading `---` YAML meta block,
// then per fixture a header line, a lone `.`, the input block, a lone `.`,
// the expected output block, and a closing lone `.`.
package fixtures

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one fixture: a human-readable header and the raw input and
// expected-output text blocks. Non-empty blocks carry one trailing newline,
// exactly as stored in the corpus file.
type Record struct {
	Header string
	Input  string
	Output string
}

// Meta holds the optional YAML block at the top of a fixture file.
type Meta struct {
	Desc   string
	Fields map[string]any
}

// File is one parsed fixture file.
type File struct {
	Path    string
	Meta    Meta
	Records []Record
}

// Parse reads a fixture file body into records. Fixture order is preserved.
func Parse(content []byte) (*File, error) {
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	f := &File{Meta: Meta{Fields: map[string]any{}}}

	i := 0
	if len(lines) > 0 && lines[0] == "---" {
		end := -1
		for j := 1; j < len(lines); j++ {
			if lines[j] == "---" {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, ErrUnterminatedMeta
		}
		raw := strings.Join(lines[1:end], "\n")
		if err := yaml.Unmarshal([]byte(raw), &f.Meta.Fields); err != nil {
			return nil, fmt.Errorf("parse meta block: %w", err)
		}
		if f.Meta.Fields == nil {
			f.Meta.Fields = map[string]any{}
		}
		if desc, ok := f.Meta.Fields["desc"].(string); ok {
			f.Meta.Desc = desc
		}
		i = end + 1
	}

	// The header of a fixture is the last non-blank line seen before its
	// opening dot. Blank lines between fixtures reset nothing; a fixture
	// directly following another simply has no header.
	header := ""
	for ; i < len(lines); i++ {
		if lines[i] != "." {
			if strings.TrimSpace(lines[i]) != "" {
				header = strings.TrimSpace(lines[i])
			}
			continue
		}

		input, next, err := collectBlock(lines, i+1)
		if err != nil {
			return nil, err
		}
		output, next, err := collectBlock(lines, next+1)
		if err != nil {
			return nil, err
		}

		f.Records = append(f.Records, Record{Header: header, Input: input, Output: output})
		header = ""
		i = next
	}

	return f, nil
}

// collectBlock gathers lines from start up to the next lone-dot line and
// returns the block text together with the index of the terminating dot.
func collectBlock(lines []string, start int) (string, int, error) {
	for j := start; j < len(lines); j++ {
		if lines[j] == "." {
			return blockText(lines[start:j]), j, nil
		}
	}
	return "", 0, ErrUnterminatedFixture
}

func blockText(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
