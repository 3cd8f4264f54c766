package pod

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotInSingleAngleForm is returned when no single-angle span can be
	// found at the offset given to DoubleSpan.
	ErrNotInSingleAngleForm = errors.New("not in a single-angle markup span")
	// ErrNotInDoubledAngleForm is returned when no doubled span can be found
	// at the offset given to SingleSpan.
	ErrNotInDoubledAngleForm = errors.New("not in a doubled-angle markup span")
)

// Rewrite replaces Range of the original text with Text. Span is the extent
// of the rewritten markup span in the resulting text.
type Rewrite struct {
	Range Range
	Text  string
	Span  Range
}

// Apply returns text with the rewrite spliced in.
func (r Rewrite) Apply(text string) string {
	return text[:r.Range.Start] + r.Text + text[r.Range.End:]
}

// Doubler converts spans between the single- and doubled-angle forms.
type Doubler struct {
	scan *Scanner
}

func NewDoubler(cfg Config) *Doubler {
	return &Doubler{scan: NewScanner(cfg)}
}

// DoubleSpan rewrites the single-angle span at anchor into the doubled form:
//
//	C<foo E<gt> bar>  =>  C<< foo > bar >>
//
// A lone E<gt> becomes a literal '>'. Runs of two or more E<gt> are kept,
// since unescaping them would read as a closer. Other entities and nested
// forms are copied as is. The anchor may be inside the span, on its tag
// letter, or right after the tag letter.
//
// The text is never modified on error.
func (d *Doubler) DoubleSpan(text string, anchor int) (Rewrite, error) {
	anchor = clampInt(anchor, 0, len(text))
	sp, ok := d.locate(text, anchor, func(n int) bool { return n == 1 })
	if !ok {
		return Rewrite{}, errors.Wrapf(ErrNotInSingleAngleForm, "offset %d", anchor)
	}
	_, limit := d.scan.cfg.Paragraph(text, sp.OpenStart)

	ent := d.scan.cfg.escapedGT()
	var sb strings.Builder
	sb.WriteByte(sp.Tag)
	sb.WriteString("<< ")
	for i := sp.OpenEnd; i < limit; {
		switch c := text[i]; {
		case strings.HasPrefix(text[i:limit], ent):
			n := 1
			for strings.HasPrefix(text[i+n*len(ent):limit], ent) {
				n++
			}
			if n == 1 {
				sb.WriteByte('>')
			} else {
				sb.WriteString(text[i : i+n*len(ent)])
			}
			i += n * len(ent)

		case c == '>':
			sb.WriteString(" >>")
			return d.rewrite(sp, i+1, sb.String()), nil

		default:
			end, ok := d.skipNested(text, i, limit)
			if !ok {
				return Rewrite{}, errors.Wrapf(ErrNotInSingleAngleForm,
					"%c< at offset %d: nested form is not closed", sp.Tag, sp.OpenStart)
			}
			sb.WriteString(text[i:end])
			i = end
		}
	}
	return Rewrite{}, errors.Wrapf(ErrNotInSingleAngleForm,
		"%c< at offset %d is not closed", sp.Tag, sp.OpenStart)
}

// SingleSpan collapses the doubled span at anchor into single-angle form,
// dropping the inner padding and escaping every bare '>' as E<gt>.
func (d *Doubler) SingleSpan(text string, anchor int) (Rewrite, error) {
	anchor = clampInt(anchor, 0, len(text))
	sp, ok := d.locate(text, anchor, func(n int) bool { return n >= 2 })
	if !ok {
		return Rewrite{}, errors.Wrapf(ErrNotInDoubledAngleForm, "offset %d", anchor)
	}
	_, limit := d.scan.cfg.Paragraph(text, sp.OpenStart)
	end, res := d.scan.closeForm(text, sp.OpenEnd, limit, sp.Angles)
	if res != formClosed {
		return Rewrite{}, errors.Wrapf(ErrNotInDoubledAngleForm,
			"%c%s at offset %d is not closed", sp.Tag, strings.Repeat("<", sp.Angles), sp.OpenStart)
	}

	payload := strings.TrimSpace(text[sp.OpenEnd : end-sp.Angles])
	var sb strings.Builder
	sb.WriteByte(sp.Tag)
	sb.WriteByte('<')
	for i := 0; i < len(payload); {
		if payload[i] == '>' {
			sb.WriteString(d.scan.cfg.escapedGT())
			i++
			continue
		}
		next, ok := d.skipNested(payload, i, len(payload))
		if !ok {
			next = i + 1
		}
		sb.WriteString(payload[i:next])
		i = next
	}
	sb.WriteByte('>')
	return d.rewrite(sp, end, sb.String()), nil
}

// locate finds the span to rewrite: the enclosing span, or an opener that
// starts at anchor or one byte before it. accept filters by angle count.
func (d *Doubler) locate(text string, anchor int, accept func(angles int) bool) (Span, bool) {
	if sp, ok := d.scan.SpanAt(text, anchor); ok {
		return sp, accept(sp.Angles)
	}
	for _, at := range []int{anchor, anchor - 1} {
		if sp, ok := d.scan.openerAt(text, at); ok && accept(sp.Angles) {
			return sp, true
		}
	}
	return Span{}, false
}

// skipNested returns the offset past the entity or nested form starting at
// i, or i+1 when there is none. It fails when the form is not closed before
// limit.
func (d *Doubler) skipNested(text string, i, limit int) (int, bool) {
	c := text[i]
	if i+1 >= limit || text[i+1] != '<' {
		return i + 1, true
	}
	switch {
	case c == d.scan.cfg.EntityTag:
		return closeEntity(text, i, limit)
	case d.scan.cfg.isTag(c):
		n := runLen(text, i+1, limit, '<')
		end, res := d.scan.closeForm(text, i+1+n, limit, n)
		return end, res == formClosed
	default:
		return i + 1, true
	}
}

func (d *Doubler) rewrite(sp Span, end int, repl string) Rewrite {
	return Rewrite{
		Range: Range{Start: sp.OpenStart, End: end},
		Text:  repl,
		Span:  Range{Start: sp.OpenStart, End: sp.OpenStart + len(repl)},
	}
}
