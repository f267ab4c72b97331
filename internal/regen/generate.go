package regen

import (
	"strings"

	"github.com/ShafSpecs/testregen/internal/fixtures"
	"github.com/ShafSpecs/testregen/internal/ident"
	"github.com/ShafSpecs/testregen/internal/rustlit"
)

// Fixed scaffolding emitted into every regenerated region. The rustfmt skip
// keeps formatters away from the literal-heavy generated body; run is the
// verification primitive every declaration calls.
const (
	skipMarker   = "#[rustfmt::skip]"
	useStatement = "use super::run;"
	closeBanner  = "// End of generated tests."
)

var openBanner = []string{
	"// Generated by testregen. DO NOT EDIT.",
	"// Changes below this line will be overwritten on the next run.",
}

// regionBody renders the generated content of one region: scaffolding, one
// declaration per record with a blank separator line between successive
// declarations, and the closing banner. The surrounding fences and the
// directive line are copied by the rewriter, not emitted here.
func regionBody(alloc *ident.Allocator, group string, records []fixtures.Record) []string {
	lines := []string{
		skipMarker,
		"mod " + alloc.Allocate(group) + " {",
		useStatement,
	}
	lines = append(lines, openBanner...)
	for i, rec := range records {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, declaration(alloc, rec)...)
	}
	return append(lines, closeBanner, "}")
}

// declaration renders one fixture record as a #[test] function named by the
// allocator. One trailing newline is stripped from each block before
// escaping, undoing the newline the corpus format appends to every block.
func declaration(alloc *ident.Allocator, rec fixtures.Record) []string {
	lines := []string{
		"#[test]",
		"fn " + alloc.Allocate(rec.Header) + "() {",
	}
	lines = appendBinding(lines, "input", rec.Input)
	lines = appendBinding(lines, "output", rec.Output)
	return append(lines, "    run(input, output);", "}")
}

// appendBinding emits `let <name> = <literal>;`. Raw literals may span
// source lines; continuation lines splice in verbatim so the literal's
// content is not disturbed by indentation.
func appendBinding(lines []string, name, block string) []string {
	lit := rustlit.Escape(strings.TrimSuffix(block, "\n"))
	return append(lines, strings.Split("    let "+name+" = "+lit+";", "\n")...)
}
