package pod

import (
	"fmt"
	"regexp"
	"sort"
)

// Warning rule names, in table order.
const (
	RuleArrow            = "arrow"
	RuleFatArrow         = "fat-arrow"
	RuleOpenSpace        = "open-space"
	RuleCloseSpaceTriple = "close-space-triple"
	RuleCloseSpace       = "close-space"
)

// Warning flags one suspicious token.
type Warning struct {
	Range
	Rule    string
	Message string
}

func (w Warning) String() string { return fmt.Sprintf("%s %v", w.Rule, w.Range) }

type warnRule struct {
	name  string
	msg   string
	re    *regexp.Regexp
	group int
}

// RuleNames returns every rule name in table order.
func RuleNames() []string {
	return []string{RuleArrow, RuleFatArrow, RuleOpenSpace, RuleCloseSpaceTriple, RuleCloseSpace}
}

func warnRules(cfg Config) []warnRule {
	tags := "[" + regexp.QuoteMeta(cfg.Tags) + "]"
	return []warnRule{
		{
			name:  RuleArrow,
			msg:   "'->' ends the span here; escape as -E<gt> or use a doubled form",
			re:    regexp.MustCompile(tags + `<[^<>]*(->)[A-Za-z0-9_]`),
			group: 1,
		},
		{
			name:  RuleFatArrow,
			msg:   "'=>' ends the span here; escape as =E<gt> or use a doubled form",
			re:    regexp.MustCompile(tags + `<[^<>]*(=>)`),
			group: 1,
		},
		{
			name:  RuleOpenSpace,
			msg:   "doubled opener needs whitespace after it",
			re:    regexp.MustCompile(tags + `(<{2,})[^<\s]`),
			group: 1,
		},
		{
			name:  RuleCloseSpaceTriple,
			msg:   "doubled closer needs whitespace before it",
			re:    regexp.MustCompile(`[^\s>](>{3,})`),
			group: 1,
		},
		{
			name:  RuleCloseSpace,
			msg:   "doubled closer needs whitespace before it",
			re:    regexp.MustCompile(`(?m)[^\s>](>>)(?:[^>]|$)`),
			group: 1,
		},
	}
}

// WarningScanner flags likely markup mistakes with a fixed table of
// patterns. It does not use the span scanner.
type WarningScanner struct {
	rules []warnRule
}

// NewWarningScanner builds a scanner running the named rules, or every rule
// when names is empty. Unknown names are ignored.
func NewWarningScanner(cfg Config, names ...string) *WarningScanner {
	all := warnRules(cfg.normalize())
	if len(names) == 0 {
		return &WarningScanner{rules: all}
	}
	enabled := make(map[string]bool, len(names))
	for _, n := range names {
		enabled[n] = true
	}
	var rules []warnRule
	for _, r := range all {
		if enabled[r.name] {
			rules = append(rules, r)
		}
	}
	return &WarningScanner{rules: rules}
}

// Scan returns the warnings inside [start, end), sorted by position. Each
// range covers only the offending token. When rules flag overlapping tokens
// the first rule in table order wins; ranges are never merged.
func (w *WarningScanner) Scan(text string, start, end int) []Warning {
	end = clampInt(end, 0, len(text))
	start = clampInt(start, 0, end)
	sub := text[start:end]

	var out []Warning
	for _, r := range w.rules {
		for _, m := range r.re.FindAllStringSubmatchIndex(sub, -1) {
			g := Range{Start: start + m[2*r.group], End: start + m[2*r.group+1]}
			if overlapsAny(out, g) {
				continue
			}
			out = append(out, Warning{Range: g, Rule: r.name, Message: r.msg})
		}
	}
	sortWarnings(out)
	return out
}

// Rescan widens [start, end) to whole lines, scans it and replaces the
// matching part of set. It returns the fresh warnings.
func (w *WarningScanner) Rescan(set *WarningSet, text string, start, end int) []Warning {
	lines := LineRange(text, start, end)
	ws := w.Scan(text, lines.Start, lines.End)
	set.Replace(lines.Start, lines.End, ws)
	return ws
}

// LineRange widens [start, end) to the enclosing whole lines.
func LineRange(text string, start, end int) Range {
	end = clampInt(end, 0, len(text))
	start = clampInt(start, 0, end)
	return Range{Start: lineStart(text, start), End: lineEnd(text, end)}
}

// WarningSet holds the warnings of a document. Replace gives it replace
// semantics: rescanning a range never duplicates flags.
//
// A WarningSet is not safe for concurrent mutation.
type WarningSet struct {
	items []Warning
}

// Replace drops every warning touching [start, end) and adds ws.
func (s *WarningSet) Replace(start, end int, ws []Warning) {
	r := Range{Start: start, End: end}
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Overlaps(r) || (it.Start >= start && it.End <= end) {
			continue
		}
		kept = append(kept, it)
	}
	s.items = append(kept, ws...)
	sortWarnings(s.items)
}

func (s *WarningSet) Len() int { return len(s.items) }

// All returns a copy of every warning, sorted by position.
func (s *WarningSet) All() []Warning {
	return append([]Warning(nil), s.items...)
}

// In returns the warnings overlapping [start, end).
func (s *WarningSet) In(start, end int) []Warning {
	r := Range{Start: start, End: end}
	var out []Warning
	for _, it := range s.items {
		if it.Overlaps(r) {
			out = append(out, it)
		}
	}
	return out
}

func (s *WarningSet) Clear() { s.items = nil }

func overlapsAny(ws []Warning, r Range) bool {
	for _, w := range ws {
		if w.Overlaps(r) {
			return true
		}
	}
	return false
}

func sortWarnings(ws []Warning) {
	sort.SliceStable(ws, func(i, j int) bool {
		if ws[i].Start != ws[j].Start {
			return ws[i].Start < ws[j].Start
		}
		return ws[i].End < ws[j].End
	})
}
