package config

import (
	"io/fs"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/podgt/pod"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	l := &Loader{FS: memFS{}}
	cfg, err := l.Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Empty(t, cfg.Source)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	l := &Loader{FS: memFS{}}
	_, err := l.Load("custom.toml")
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	l := &Loader{FS: memFS{FileName: `
[markup]
tags = "BCI"
nobreak_tag = "F"

[lint]
rules = ["arrow", "open-space"]
color = "never"

[editor]
fill_column = 60
`}}
	cfg, err := l.Load("")
	require.NoError(t, err)
	require.Equal(t, FileName, cfg.Source)
	require.Equal(t, "BCI", cfg.Markup.Tags)
	require.Equal(t, "E", cfg.Markup.EntityTag)
	require.Equal(t, "F", cfg.Markup.NoBreakTag)
	require.Equal(t, []string{"arrow", "open-space"}, cfg.Lint.Rules)
	require.Equal(t, ColorNever, cfg.Lint.Color)
	require.Equal(t, 60, cfg.Editor.FillColumn)
	require.True(t, cfg.Editor.LineNumbers)

	pc, err := cfg.Pod()
	require.NoError(t, err)
	require.Equal(t, byte('F'), pc.NoBreakTag)
	require.NotNil(t, pc.Paragraph)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	l := &Loader{
		FS:     memFS{"p.toml": "[editor]\nfill_column = 60\n"},
		Lookup: env(map[string]string{EnvTags: "CQ", EnvFillColumn: " 40 "}),
	}
	cfg, err := l.Load("p.toml")
	require.NoError(t, err)
	require.Equal(t, "CQ", cfg.Markup.Tags)
	require.Equal(t, 40, cfg.Editor.FillColumn)
}

func TestLoad_BadEnvFillColumn(t *testing.T) {
	l := &Loader{FS: memFS{}, Lookup: env(map[string]string{EnvFillColumn: "wide"})}
	_, err := l.Load("")
	require.True(t, errors.Is(err, ErrInvalidValue), "got %v", err)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("bad.toml", []byte("[markup]\ntags = \n"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "got %T", err)
	require.Equal(t, "bad.toml", perr.Path)
	require.Equal(t, 2, perr.Line)

	_, err = Parse("unknown.toml", []byte("[markup]\ncolour = 1\n"))
	require.True(t, errors.As(err, &perr), "got %T", err)
	require.Contains(t, perr.Error(), "unknown key markup.colour")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "lowercase-tag", mutate: func(c *Config) { c.Markup.Tags = "bc" }, want: ErrInvalidTag},
		{name: "long-entity", mutate: func(c *Config) { c.Markup.EntityTag = "EE" }, want: ErrInvalidTag},
		{name: "empty-nobreak", mutate: func(c *Config) { c.Markup.NoBreakTag = "" }, want: ErrInvalidTag},
		{name: "unknown-rule", mutate: func(c *Config) { c.Lint.Rules = []string{"arrows"} }, want: ErrInvalidValue},
		{name: "color", mutate: func(c *Config) { c.Lint.Color = "sometimes" }, want: ErrInvalidValue},
		{name: "fill-column", mutate: func(c *Config) { c.Editor.FillColumn = 0 }, want: ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestPod_WrapsPodError(t *testing.T) {
	cfg := Default()
	cfg.Markup.Tags = "C<"
	_, err := cfg.Pod()
	require.True(t, errors.Is(err, pod.ErrInvalidTag))
	require.True(t, errors.Is(err, ErrInvalidTag))
}
