// Package rustlit renders arbitrary text as Rust string-literal source.
//
// The emitted token parses back to exactly the input under Rust's literal
// grammar, including trailing spaces, tabs, quotes, and backslashes. Three
// forms are used, picked in order: an escaped one-line literal when the text
// carries whitespace that raw embedding would silently lose, a raw literal
// with an extended # fence when the text collides with the minimal fence, and
// the plain r#"..."# form otherwise.
package rustlit

import "strings"

// Escape returns Rust source for a string literal evaluating to text.
func Escape(text string) string {
	if needsEscapedForm(text) {
		return escapedForm(text)
	}
	return rawForm(text)
}

// needsEscapedForm reports whether raw embedding would lose whitespace: any
// tab character, or any line ending in a space, forces the escaped form.
func needsEscapedForm(text string) bool {
	if strings.Contains(text, "\t") {
		return true
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasSuffix(line, " ") {
			return true
		}
	}
	return false
}

// escapedForm emits a single-source-line "..." literal. Newlines become \n,
// tabs \t, and the space closing a line becomes the visible \u{20} token so
// nothing that matters survives only as invisible source whitespace.
func escapedForm(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 16)
	b.WriteByte('"')
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString(`\n`)
		}
		trailingSpace := strings.HasSuffix(line, " ")
		if trailingSpace {
			line = line[:len(line)-1]
		}
		for _, r := range line {
			switch r {
			case '\\':
				b.WriteString(`\\`)
			case '"':
				b.WriteString(`\"`)
			case '\t':
				b.WriteString(`\t`)
			default:
				b.WriteRune(r)
			}
		}
		if trailingSpace {
			b.WriteString(`\u{20}`)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// rawForm emits r#"..."# with the content verbatim, growing the # fence to
// the smallest width the text cannot terminate early.
func rawForm(text string) string {
	hashes := "#"
	if strings.Contains(text, `"#`) || strings.Contains(text, `#"`) {
		for n := 2; ; n++ {
			hashes = strings.Repeat("#", n)
			if !strings.Contains(text, `"`+hashes) && !strings.Contains(text, hashes+`"`) {
				break
			}
		}
	}
	return "r" + hashes + `"` + text + `"` + hashes
}
