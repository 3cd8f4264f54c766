package pod

import (
	"strings"
	"testing"
)

func TestFindEnclosingSpan_SingleSpanPayloadOffsets(t *testing.T) {
	s := NewScanner(DefaultConfig())
	for _, tag := range DefaultTags {
		text := "before " + string(tag) + "<payload> after"
		open := strings.IndexByte(text, '<')
		end := strings.IndexByte(text, '>')
		for off := open + 1; off < end; off++ {
			sp, ok := s.FindEnclosingSpan(text, 0, off)
			if !ok {
				t.Fatalf("%q off=%d: no span", text, off)
			}
			if sp.Tag != byte(tag) || sp.Angles != 1 || sp.Kind != KindPlain {
				t.Fatalf("%q off=%d: got %v, want %c angles=1 plain", text, off, sp, tag)
			}
		}
	}
}

func TestFindEnclosingSpan_NestedResolvesToOuter(t *testing.T) {
	s := NewScanner(DefaultConfig())
	text := "C<< B<inner> >>"
	for off := strings.Index(text, "inner"); off <= strings.Index(text, "> >>"); off++ {
		sp, ok := s.FindEnclosingSpan(text, 0, off)
		if !ok {
			t.Fatalf("off=%d: no span", off)
		}
		if sp.Tag != 'C' || sp.Angles != 2 || sp.OpenStart != 0 || sp.OpenEnd != 3 {
			t.Fatalf("off=%d: got %v, want outer C span", off, sp)
		}
	}
}

func TestFindEnclosingSpan_WindowStopsAtParagraphStart(t *testing.T) {
	s := NewScanner(DefaultConfig())
	text := "C<not closed\n\nplain text"
	off := len(text) - 2

	if sp, ok := s.SpanAt(text, off); ok {
		t.Fatalf("span leaked across paragraphs: %v", sp)
	}
	if sp, ok := s.FindEnclosingSpan(text, 0, off); !ok || sp.Tag != 'C' {
		t.Fatalf("explicit window from 0: got %v, %v", sp, ok)
	}
}

func TestFindEnclosingSpan_LookaheadStopsAtParagraphEnd(t *testing.T) {
	s := NewScanner(DefaultConfig())
	text := "B<bold\n\nnext>"
	sp, ok := s.SpanAt(text, 4)
	if !ok {
		t.Fatalf("expected span")
	}
	if sp.Kind != KindUnterminated {
		t.Fatalf("kind=%v, want %v", sp.Kind, KindUnterminated)
	}
}

func TestFindEnclosingSpan_ClampsOffsets(t *testing.T) {
	s := NewScanner(DefaultConfig())
	text := "I<x>"
	if _, ok := s.FindEnclosingSpan(text, -10, -3); ok {
		t.Fatalf("negative offsets must not find a span")
	}
	sp, ok := s.FindEnclosingSpan(text, 0, 999)
	if !ok || sp.Tag != 'I' {
		t.Fatalf("offset past end: got %v, %v", sp, ok)
	}
}

func TestFindEnclosingSpan_CustomTags(t *testing.T) {
	s := NewScanner(Config{Tags: "QE"})
	if got := s.Config().Tags; got != "Q" {
		t.Fatalf("entity tag must be dropped from tags: got %q", got)
	}
	sp, ok := s.SpanAt("Q<x> C<y>", 2)
	if !ok || sp.Tag != 'Q' {
		t.Fatalf("got %v, %v; want Q span", sp, ok)
	}
	if _, ok := s.SpanAt("Q<x> C<y>", 7); ok {
		t.Fatalf("C is not configured and must not open a span")
	}
}

func TestBlankLineParagraph(t *testing.T) {
	text := "one\ntwo\n  \nthree\n"
	cases := []struct {
		off        int
		start, end int
	}{
		{off: 0, start: 0, end: 7},
		{off: 5, start: 0, end: 7},
		{off: 9, start: 8, end: 10},
		{off: 12, start: 11, end: 16},
		{off: len(text), start: len(text), end: len(text)},
	}
	for _, tc := range cases {
		start, end := BlankLineParagraph(text, tc.off)
		if start != tc.start || end != tc.end {
			t.Fatalf("off=%d: got [%d,%d), want [%d,%d)", tc.off, start, end, tc.start, tc.end)
		}
	}
}
