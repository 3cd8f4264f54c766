package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override file settings.
const (
	EnvTags       = "PODGT_TAGS"
	EnvFillColumn = "PODGT_FILL_COLUMN"
)

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Loader resolves the configuration from a file system and environment.
type Loader struct {
	FS     FileSystem
	Lookup func(key string) (string, bool)
}

// NewLoader returns a Loader over the OS file system and environment.
func NewLoader() *Loader {
	return &Loader{FS: OSFS{}, Lookup: os.LookupEnv}
}

// Load reads path, or FileName when path is empty, and applies the
// environment. An explicit path must exist; the default one may not.
func (l *Loader) Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	cfg := Default()
	data, err := l.FS.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Parse(path, data); err != nil {
			return Config{}, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, errors.Wrapf(err, "reading config file %s", path)
	}

	if cfg, err = l.applyEnv(cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", describe(cfg))
	}
	return cfg, nil
}

// Parse decodes data over the defaults. Unknown keys are rejected.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) && len(serr.Errors) > 0 {
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
		}
		return Config{}, perr
	}
	cfg.Source = path
	return cfg, nil
}

func (l *Loader) applyEnv(cfg Config) (Config, error) {
	if l.Lookup == nil {
		return cfg, nil
	}
	if v, ok := l.Lookup(EnvTags); ok {
		cfg.Markup.Tags = v
	}
	if v, ok := l.Lookup(EnvFillColumn); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, errors.Mark(errors.Wrapf(err, "%s", EnvFillColumn), ErrInvalidValue)
		}
		cfg.Editor.FillColumn = n
	}
	return cfg, nil
}

func describe(cfg Config) string {
	if cfg.Source == "" {
		return "config"
	}
	return cfg.Source
}
