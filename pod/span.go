package pod

import (
	"fmt"
	"strings"
)

// Kind classifies where the reference offset sits inside a span.
type Kind uint8

const (
	// KindPlain means the offset is in ordinary payload text (or inside the
	// opener) and the span has a closer in the paragraph.
	KindPlain Kind = iota
	// KindInsideEntity means the offset is inside an entity escape whose
	// closing '>' has not been typed yet.
	KindInsideEntity
	// KindUnterminated means no closer exists before the paragraph ends.
	KindUnterminated
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindInsideEntity:
		return "inside-entity"
	case KindUnterminated:
		return "unterminated"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Overlaps reports whether r and o share at least one byte.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Span describes the markup form enclosing a reference offset.
type Span struct {
	Tag byte
	// Angles is the length of the opening '<' run; the closer is a run of
	// the same number of '>'.
	Angles int
	// OpenStart and OpenEnd bound the tag letter plus its '<' run.
	OpenStart int
	OpenEnd   int
	Kind      Kind
}

// Opener returns the byte range of the tag and its '<' run.
func (s Span) Opener() Range { return Range{Start: s.OpenStart, End: s.OpenEnd} }

func (s Span) String() string {
	return fmt.Sprintf("%c angles=%d open=%v %v", s.Tag, s.Angles, s.Opener(), s.Kind)
}

// Scanner finds the markup span enclosing an offset.
//
// A Scanner holds no mutable state and may be shared between goroutines.
type Scanner struct {
	cfg Config
}

func NewScanner(cfg Config) *Scanner {
	return &Scanner{cfg: cfg.normalize()}
}

// Config returns the normalized configuration.
func (s *Scanner) Config() Config { return s.cfg }

// SpanAt is FindEnclosingSpan with the paragraph start taken from the
// configured paragraph predicate.
func (s *Scanner) SpanAt(text string, off int) (Span, bool) {
	off = clampInt(off, 0, len(text))
	start, _ := s.cfg.Paragraph(text, off)
	return s.FindEnclosingSpan(text, start, off)
}

type scanState uint8

const (
	searchingTag scanState = iota
	searchingTerminator
	insideEntity
)

// FindEnclosingSpan returns the outermost span that encloses ref, scanning
// only the window [paragraphStart, ref]. The boolean is false when ref is in
// ordinary text.
func (s *Scanner) FindEnclosingSpan(text string, paragraphStart, ref int) (Span, bool) {
	ref = clampInt(ref, 0, len(text))
	pos := clampInt(paragraphStart, 0, ref)

	var sp Span
	state := searchingTag
	for {
		switch state {
		case searchingTag:
			open, ok := s.nextOpener(text, pos, ref)
			if !ok {
				return Span{}, false
			}
			sp = open
			if sp.OpenEnd >= ref {
				return sp, true
			}
			state = searchingTerminator

		case searchingTerminator:
			end, res := s.closeForm(text, sp.OpenEnd, ref, sp.Angles)
			switch res {
			case formOpenEntity:
				state = insideEntity
			case formOpen:
				sp.Kind = s.lookahead(text, sp, ref)
				return sp, true
			default:
				if end >= ref {
					return sp, true
				}
				pos = end
				state = searchingTag
			}

		case insideEntity:
			sp.Kind = KindInsideEntity
			return sp, true
		}
	}
}

// nextOpener finds the first TAG< at or after pos whose '<' lies before
// limit. The returned span counts the whole '<' run, even past limit.
func (s *Scanner) nextOpener(text string, pos, limit int) (Span, bool) {
	for i := pos; i+1 < limit; i++ {
		if sp, ok := s.openerAt(text, i); ok {
			return sp, true
		}
	}
	return Span{}, false
}

func (s *Scanner) openerAt(text string, i int) (Span, bool) {
	if i < 0 || i+1 >= len(text) || text[i+1] != '<' || !s.cfg.isTag(text[i]) {
		return Span{}, false
	}
	n := runLen(text, i+1, len(text), '<')
	return Span{
		Tag:       text[i],
		Angles:    n,
		OpenStart: i,
		OpenEnd:   i + 1 + n,
	}, true
}

type formResult uint8

const (
	formClosed formResult = iota
	formOpen
	formOpenEntity
)

// closeForm scans the payload of a form whose opener had the given number
// of angles, starting at i and never reading at or past limit. On
// formClosed the returned offset is just past the closer.
//
// Entities are opaque. Inside single-angle payloads nested forms are opaque
// too, so their '>' never closes the outer form; a doubled form only closes
// on a run of its own width.
func (s *Scanner) closeForm(text string, i, limit, angles int) (int, formResult) {
	for i < limit {
		c := text[i]
		switch {
		case c == '>':
			n := runLen(text, i, limit, '>')
			if n >= angles {
				return i + angles, formClosed
			}
			i += n

		case c == s.cfg.EntityTag && i+1 < limit && text[i+1] == '<':
			end, ok := closeEntity(text, i, limit)
			if !ok {
				return limit, formOpenEntity
			}
			i = end

		case angles == 1 && s.cfg.isTag(c) && i+1 < limit && text[i+1] == '<':
			n := runLen(text, i+1, limit, '<')
			end, res := s.closeForm(text, i+1+n, limit, n)
			if res != formClosed {
				return end, res
			}
			i = end

		default:
			i++
		}
	}
	return limit, formOpen
}

// lookahead classifies a span whose closer was not found before ref by
// searching the rest of the paragraph.
func (s *Scanner) lookahead(text string, sp Span, ref int) Kind {
	_, end := s.cfg.Paragraph(text, ref)
	end = clampInt(end, ref, len(text))
	if _, res := s.closeForm(text, sp.OpenEnd, end, sp.Angles); res == formClosed {
		return KindPlain
	}
	return KindUnterminated
}

// closeEntity returns the offset just past the '>' ending the entity that
// starts at i.
func closeEntity(text string, i, limit int) (int, bool) {
	j := strings.IndexByte(text[i+2:limit], '>')
	if j < 0 {
		return limit, false
	}
	return i + 2 + j + 1, true
}

func runLen(text string, i, limit int, c byte) int {
	n := 0
	for i+n < limit && text[i+n] == c {
		n++
	}
	return n
}
