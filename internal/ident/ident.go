// Package ident converts free-form fixture labels into unique snake_case
// identifiers suitable for generated code.
package ident

import (
	"fmt"
	"regexp"
	"strings"
)

// Fallback is substituted when a label normalizes to nothing at all.
const Fallback = "unnamed"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Allocator hands out identifiers and remembers every name it has returned.
// Uniqueness holds for the lifetime of one Allocator; create a fresh one per
// document pass and never share it across runs.
type Allocator struct {
	taken map[string]struct{}
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{taken: make(map[string]struct{})}
}

// Allocate normalizes label and reserves the resulting identifier. When the
// normalized form is already reserved, the smallest free numeric suffix is
// appended (name_1, name_2, ...). No two calls ever return the same name.
func (a *Allocator) Allocate(label string) string {
	name := Normalize(label)
	if _, clash := a.taken[name]; clash {
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s_%d", name, n)
			if _, clash := a.taken[candidate]; !clash {
				name = candidate
				break
			}
		}
	}
	a.taken[name] = struct{}{}
	return name
}

// Normalize lowercases label, folds every run of non-alphanumeric characters
// into a single underscore, and trims underscores at both ends. An empty
// result yields Fallback.
func Normalize(label string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(label), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return Fallback
	}
	return s
}
