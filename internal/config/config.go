package config

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/iw2rmb/podgt/pod"
)

// FileName is looked up in the working directory when no path is given.
const FileName = ".podgt.toml"

// Color modes for lint output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrInvalidTag reports a markup tag that is not one ASCII uppercase
	// letter.
	ErrInvalidTag = errors.New("invalid markup tag")
	// ErrInvalidValue reports any other out-of-range setting.
	ErrInvalidValue = errors.New("invalid config value")
)

// Config is the whole podgt configuration.
type Config struct {
	Markup Markup `toml:"markup"`
	Lint   Lint   `toml:"lint"`
	Editor Editor `toml:"editor"`

	// Source is the file the settings came from, or "" for defaults only.
	Source string `toml:"-"`
}

type Markup struct {
	Tags       string `toml:"tags"`
	EntityTag  string `toml:"entity_tag"`
	NoBreakTag string `toml:"nobreak_tag"`
}

type Lint struct {
	// Rules selects warning rules by name; empty enables all.
	Rules []string `toml:"rules"`
	Color string   `toml:"color"`
}

type Editor struct {
	LineNumbers bool `toml:"line_numbers"`
	FillColumn  int  `toml:"fill_column"`
}

func Default() Config {
	return Config{
		Markup: Markup{Tags: pod.DefaultTags, EntityTag: "E", NoBreakTag: "S"},
		Lint:   Lint{Color: ColorAuto},
		Editor: Editor{LineNumbers: true, FillColumn: 72},
	}
}

// Validate checks every field. The first problem found is returned.
func (c Config) Validate() error {
	for _, f := range []struct{ key, val string }{
		{"markup.entity_tag", c.Markup.EntityTag},
		{"markup.nobreak_tag", c.Markup.NoBreakTag},
	} {
		if len(f.val) != 1 {
			return errors.Wrapf(ErrInvalidTag, "%s = %q", f.key, f.val)
		}
	}
	if _, err := c.Pod(); err != nil {
		return err
	}

	known := pod.RuleNames()
	for _, r := range c.Lint.Rules {
		if !slices.Contains(known, r) {
			return errors.Wrapf(ErrInvalidValue, "lint.rules: unknown rule %q", r)
		}
	}
	switch c.Lint.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Wrapf(ErrInvalidValue, "lint.color = %q", c.Lint.Color)
	}
	if c.Editor.FillColumn < 1 {
		return errors.Wrapf(ErrInvalidValue, "editor.fill_column = %d", c.Editor.FillColumn)
	}
	return nil
}

// Pod converts the markup section into a pod.Config.
func (c Config) Pod() (pod.Config, error) {
	pc := pod.Config{
		Tags:       c.Markup.Tags,
		EntityTag:  firstByte(c.Markup.EntityTag),
		NoBreakTag: firstByte(c.Markup.NoBreakTag),
		Paragraph:  pod.BlankLineParagraph,
	}
	if err := pc.Validate(); err != nil {
		return pod.Config{}, errors.Mark(errors.Wrap(err, "markup"), ErrInvalidTag)
	}
	return pc, nil
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
