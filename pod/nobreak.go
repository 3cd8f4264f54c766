package pod

import "strings"

// operatorNot is a code span that ends in sentence punctuation but must stay
// attached to the word that follows it.
const operatorNot = "C<!>"

// NoBreakAdvisor decides whether a line break may be inserted at an offset.
type NoBreakAdvisor struct {
	scan *Scanner
}

func NewNoBreakAdvisor(cfg Config) *NoBreakAdvisor {
	return &NoBreakAdvisor{scan: NewScanner(cfg)}
}

// ShouldSuppressBreak reports whether breaking the line at off would split
// markup that has to stay on one line:
//   - right after C<!> (trailing blanks ignored);
//   - anywhere inside a no-break span (S<...>);
//   - between a doubled opener and the first payload character;
//   - between the last payload character and the closer.
func (a *NoBreakAdvisor) ShouldSuppressBreak(text string, off int) bool {
	off = clampInt(off, 0, len(text))

	j := off
	for j > 0 && isHSpace(text[j-1]) {
		j--
	}
	if strings.HasSuffix(text[:j], operatorNot) {
		return true
	}

	sp, ok := a.scan.SpanAt(text, off)
	if !ok {
		return false
	}
	if sp.Tag == a.scan.cfg.NoBreakTag {
		return true
	}
	if sp.Angles >= 2 && off > sp.OpenStart && off <= skipSpace(text, sp.OpenEnd) {
		return true
	}
	return closerAt(text, skipSpace(text, off), sp.Angles)
}

// closerAt reports whether text holds exactly n '>' at i.
func closerAt(text string, i, n int) bool {
	return n > 0 && runLen(text, i, len(text), '>') == n
}

func skipSpace(text string, i int) int {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i
}

func isHSpace(c byte) bool { return c == ' ' || c == '\t' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
