package regen

import (
	"errors"
	"fmt"
)

// ErrUnknownState signals that the rewriter reached a state outside its
// transition table. Seeing it means a bug in the rewriter, not a problem
// with the input document.
var ErrUnknownState = errors.New("rewriter entered an unknown state")

// ErrDirtyWorktree is returned in require-clean mode when the target file
// sits in a git work tree with uncommitted changes.
var ErrDirtyWorktree = errors.New("work tree has uncommitted changes")

// NoFixturesError reports a directive whose group resolved to zero fixture
// records, which points at a stale or misspelled group name. The run aborts
// before anything is written.
type NoFixturesError struct {
	Group string
}

func (e NoFixturesError) Error() string {
	return fmt.Sprintf("no fixtures found for group %q", e.Group)
}
