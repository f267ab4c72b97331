// Package regen rewrites generated test regions inside a Rust source
// document. A region opens with a comment fence followed by a TESTGEN
// directive naming a fixture group; everything between the directive and the
// closing fence is replaced with test functions generated from that group's
// fixtures. Text outside regions is copied through untouched, so running the
// rewrite twice yields the same document.
package regen

import (
	"fmt"
	"strings"

	"github.com/ShafSpecs/testregen/internal/fixtures"
	"github.com/ShafSpecs/testregen/internal/ident"
)

// Loader supplies the fixture records for a directive's group name.
type Loader interface {
	Load(group string) ([]fixtures.Record, error)
}

// Summary reports what a rewrite produced.
type Summary struct {
	Regions  int
	Fixtures int
}

type state int

const (
	// statePassthrough copies lines until a fence arms the scanner.
	statePassthrough state = iota
	// stateMaybeHeader follows a fence: a directive opens a region, any
	// other line falls back to passthrough. Another fence stays armed.
	stateMaybeHeader
	// stateSkipping discards the stale region body until the closing fence.
	stateSkipping
)

// Rewrite regenerates every region in doc from loader and returns the new
// document. Identifiers are unique across the whole document; each call
// starts from a fresh namespace. The result always ends in exactly one
// newline. On any error the document is returned empty so a caller cannot
// accidentally write a half-rewritten file.
func Rewrite(doc string, loader Loader) (string, Summary, error) {
	r := &rewriter{
		loader: loader,
		alloc:  ident.NewAllocator(),
		state:  statePassthrough,
	}
	for _, line := range strings.Split(strings.TrimSuffix(doc, "\n"), "\n") {
		if err := r.feed(line); err != nil {
			return "", Summary{}, err
		}
	}
	return strings.Join(r.out, "\n") + "\n", r.summary, nil
}

type rewriter struct {
	loader  Loader
	alloc   *ident.Allocator
	state   state
	out     []string
	summary Summary
}

func (r *rewriter) feed(line string) error {
	switch r.state {
	case statePassthrough:
		r.out = append(r.out, line)
		if isFence(line) {
			r.state = stateMaybeHeader
		}
		return nil

	case stateMaybeHeader:
		r.out = append(r.out, line)
		if isFence(line) {
			return nil
		}
		if group, ok := directiveGroup(line); ok {
			r.state = stateSkipping
			return r.generate(group)
		}
		r.state = statePassthrough
		return nil

	case stateSkipping:
		if isFence(line) {
			r.out = append(r.out, line)
			r.state = stateMaybeHeader
		}
		return nil

	default:
		return fmt.Errorf("%w: %d", ErrUnknownState, r.state)
	}
}

func (r *rewriter) generate(group string) error {
	records, err := r.loader.Load(group)
	if err != nil {
		return fmt.Errorf("load fixtures for group %q: %w", group, err)
	}
	if len(records) == 0 {
		return NoFixturesError{Group: group}
	}
	r.out = append(r.out, regionBody(r.alloc, group, records)...)
	r.summary.Regions++
	r.summary.Fixtures += len(records)
	return nil
}
