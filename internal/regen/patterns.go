package regen

import "regexp"

// Line patterns for region detection, kept in one place so the rewriter and
// its tests agree on what counts as a fence or a directive.
//
// A fence is a line of nothing but four or more slashes. A directive is a
// comment line naming the fixture group for the region that the preceding
// fence opened; surrounding whitespace is not part of the group name.
var (
	fencePattern     = regexp.MustCompile(`^/{4,}$`)
	directivePattern = regexp.MustCompile(`^/{2,}[ \t]+TESTGEN:[ \t]*(.+?)[ \t]*$`)
)

func isFence(line string) bool {
	return fencePattern.MatchString(line)
}

// directiveGroup extracts the fixture group named by a directive line.
// ok is false for ordinary text, including directives with an empty group.
func directiveGroup(line string) (group string, ok bool) {
	m := directivePattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
