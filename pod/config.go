package pod

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultTags lists the formatting codes recognized by DefaultConfig.
const DefaultTags = "BCFILSXZ"

// ParagraphFunc reports the paragraph around off as a half-open byte range
// [start, end). Implementations must return start <= off <= end.
type ParagraphFunc func(text string, off int) (start, end int)

// Config controls which markup is recognized.
//
// Zero fields are replaced by the DefaultConfig values.
type Config struct {
	// Tags are the single-letter formatting codes that open a span.
	// The entity tag is never treated as a span opener.
	Tags string

	// EntityTag introduces an entity escape such as E<gt>.
	EntityTag byte

	// NoBreakTag marks spans that must never contain a line break.
	NoBreakTag byte

	// Paragraph bounds every scan.
	Paragraph ParagraphFunc
}

// ErrInvalidTag is returned by Config.Validate.
var ErrInvalidTag = errors.New("invalid markup tag")

func DefaultConfig() Config {
	return Config{
		Tags:       DefaultTags,
		EntityTag:  'E',
		NoBreakTag: 'S',
		Paragraph:  BlankLineParagraph,
	}
}

// Validate reports whether every tag is an ASCII uppercase letter.
func (c Config) Validate() error {
	check := func(what string, b byte) error {
		if b < 'A' || b > 'Z' {
			return errors.Wrapf(ErrInvalidTag, "%s %q", what, b)
		}
		return nil
	}
	for i := 0; i < len(c.Tags); i++ {
		if err := check("tag", c.Tags[i]); err != nil {
			return err
		}
	}
	if c.EntityTag != 0 {
		if err := check("entity tag", c.EntityTag); err != nil {
			return err
		}
	}
	if c.NoBreakTag != 0 {
		if err := check("no-break tag", c.NoBreakTag); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.Tags == "" {
		c.Tags = def.Tags
	}
	if c.EntityTag == 0 {
		c.EntityTag = def.EntityTag
	}
	if c.NoBreakTag == 0 {
		c.NoBreakTag = def.NoBreakTag
	}
	if c.Paragraph == nil {
		c.Paragraph = def.Paragraph
	}
	c.Tags = strings.ReplaceAll(c.Tags, string(c.EntityTag), "")
	return c
}

func (c Config) isTag(b byte) bool {
	return b != c.EntityTag && strings.IndexByte(c.Tags, b) >= 0
}

// escapedGT is the entity spelling of a literal '>'.
func (c Config) escapedGT() string {
	return string(c.EntityTag) + "<gt>"
}

// BlankLineParagraph treats lines holding only whitespace, and the text
// boundaries, as paragraph separators. A blank line is its own paragraph.
func BlankLineParagraph(text string, off int) (start, end int) {
	off = clampInt(off, 0, len(text))
	start = lineStart(text, off)
	end = lineEnd(text, off)
	if isBlank(text[start:end]) {
		return start, end
	}

	for start > 0 {
		prev := lineStart(text, start-1)
		if isBlank(text[prev : start-1]) {
			break
		}
		start = prev
	}
	for end < len(text) {
		next := lineEnd(text, end+1)
		if isBlank(text[end+1 : next]) {
			break
		}
		end = next
	}
	return start, end
}

func lineStart(text string, off int) int {
	return strings.LastIndexByte(text[:off], '\n') + 1
}

func lineEnd(text string, off int) int {
	if i := strings.IndexByte(text[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(text)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
