package pod

import (
	"strings"
	"testing"
)

func TestShouldSuppressBreak_InsideNoBreakSpan(t *testing.T) {
	a := NewNoBreakAdvisor(DefaultConfig())
	text := "x S<do not break this> y"
	open, end := strings.IndexByte(text, '<')+1, strings.IndexByte(text, '>')
	for off := open; off <= end; off++ {
		if !a.ShouldSuppressBreak(text, off) {
			t.Fatalf("off=%d (%q|%q): break allowed inside S<>", off, text[:off], text[off:])
		}
	}
	if a.ShouldSuppressBreak(text, 1) {
		t.Fatalf("break before the span must be allowed")
	}
}

func TestShouldSuppressBreak_DoubledOpenerAndCloser(t *testing.T) {
	a := NewNoBreakAdvisor(DefaultConfig())
	text := "C<< x >>"

	if !a.ShouldSuppressBreak(text, 3) {
		t.Fatalf("break right after C<< must be suppressed")
	}
	if !a.ShouldSuppressBreak(text, 4) {
		t.Fatalf("break after the opener padding must be suppressed")
	}
	if !a.ShouldSuppressBreak(text, 6) {
		t.Fatalf("break right before >> must be suppressed")
	}
}

func TestShouldSuppressBreak_CustomNoBreakTag(t *testing.T) {
	a := NewNoBreakAdvisor(Config{NoBreakTag: 'F'})
	if !a.ShouldSuppressBreak("F<some file name>", 8) {
		t.Fatalf("configured no-break tag must suppress")
	}
	if a.ShouldSuppressBreak("S<some words here>", 8) {
		t.Fatalf("S is an ordinary tag once F is the no-break tag")
	}
}
