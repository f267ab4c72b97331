package fixtures

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dir loads fixture groups from files under a corpus root. A group name is a
// path relative to the root; Load tries it verbatim and then with a .txt
// extension.
type Dir struct {
	Root string
}

// NewDir returns a Dir rooted at root.
func NewDir(root string) Dir {
	return Dir{Root: root}
}

// Load returns the records of one group in corpus order.
func (d Dir) Load(group string) ([]Record, error) {
	f, err := d.Open(group)
	if err != nil {
		return nil, err
	}
	return f.Records, nil
}

// Open resolves and parses the fixture file backing group.
func (d Dir) Open(group string) (*File, error) {
	path, err := d.resolve(group)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Groups walks the corpus root and returns every group name that Load would
// resolve, relative to the root and sorted. The .txt extension is dropped
// because Load adds it back.
func (d Dir) Groups() ([]string, error) {
	var groups []string
	err := filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != d.Root && strings.HasPrefix(entry.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(entry.Name(), ".txt") {
			return nil
		}
		rel, err := filepath.Rel(d.Root, path)
		if err != nil {
			return err
		}
		groups = append(groups, strings.TrimSuffix(filepath.ToSlash(rel), ".txt"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus root %s: %w", d.Root, err)
	}
	sort.Strings(groups)
	return groups, nil
}

func (d Dir) resolve(group string) (string, error) {
	for _, name := range []string{group, group + ".txt"} {
		path := filepath.Join(d.Root, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", NotFoundError{Group: group, Root: d.Root}
}
