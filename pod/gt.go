package pod

import "unicode/utf8"

// GreaterThanInserter picks what a typed '>' should insert.
type GreaterThanInserter struct {
	scan *Scanner
}

func NewGreaterThanInserter(cfg Config) *GreaterThanInserter {
	return &GreaterThanInserter{scan: NewScanner(cfg)}
}

// Resolve returns the text to insert for a '>' typed at off, given the
// character before it. After '-', '=' or a space inside a single-angle span
// the '>' would close the span early, so the entity form is returned.
// Doubled spans and entities in progress take a literal '>'.
func (g *GreaterThanInserter) Resolve(text string, off int, preceding rune) string {
	switch preceding {
	case '-', '=', ' ':
	default:
		return ">"
	}
	sp, ok := g.scan.SpanAt(text, off)
	if !ok || sp.Kind == KindInsideEntity || sp.Angles != 1 {
		return ">"
	}
	return g.scan.cfg.escapedGT()
}

// ResolveAt is Resolve with the preceding character read from text.
func (g *GreaterThanInserter) ResolveAt(text string, off int) string {
	off = clampInt(off, 0, len(text))
	r, _ := utf8.DecodeLastRuneInString(text[:off])
	return g.Resolve(text, off, r)
}
