// Package config resolves project settings from depbuild.yaml, .env and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
//
// Precedence, highest first: process environment, .env, depbuild.yaml, defaults.
type Loader struct {
	logger    ports.Logger
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:    logger,
		lookupEnv: os.LookupEnv,
	}
}

// WithLookupEnv replaces the process environment lookup. Used for testing.
func (l *Loader) WithLookupEnv(fn func(string) (string, bool)) *Loader {
	l.lookupEnv = fn
	return l
}

// Load resolves the settings for the project rooted at root.
func (l *Loader) Load(root string) (*domain.Settings, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "root", root)
	}

	settings := domain.DefaultSettings(absRoot)

	depfile, err := readDepfile(filepath.Join(absRoot, Filename))
	if err != nil {
		return nil, err
	}
	if depfile != nil {
		l.logger.Info("using settings from " + Filename)
		apply(&settings.Project, depfile.Project)
		apply(&settings.Tool, depfile.CMake)
		apply(&settings.Generator, depfile.Generator)
	}

	dotenv, err := readDotenv(filepath.Join(absRoot, DotenvFilename))
	if err != nil {
		return nil, err
	}

	lookup := func(key string) string {
		if v, ok := l.lookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}
	apply(&settings.Project, lookup(EnvProject))
	apply(&settings.Tool, lookup(EnvTool))
	apply(&settings.Generator, lookup(EnvGenerator))

	if err := validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func apply(field *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*field = v
	}
}

func readDepfile(path string) (*Depfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var depfile Depfile
	if err := yaml.Unmarshal(data, &depfile); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return &depfile, nil
}

func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return values, nil
}

func validate(s *domain.Settings) error {
	if strings.ContainsAny(s.Project, `/\`) || s.Project == "." || s.Project == ".." {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "project must be a single directory name"), "project", s.Project)
	}
	return nil
}
