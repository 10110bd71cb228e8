package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "quill.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Tokenize tokenizeConfig `toml:"tokenize"`
}

type tokenizeConfig struct {
	Format         string `toml:"format"`
	Jobs           int    `toml:"jobs"`
	Cache          bool   `toml:"cache"`
	SkipWhitespace bool   `toml:"skip_whitespace"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest ищет quill.toml от startDir вверх. Отсутствие файла
// не ошибка: возвращается (nil, false, nil).
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, true, fmt.Errorf("%s: unknown keys: %s", manifestPath, strings.Join(keys, ", "))
	}
	if meta.IsDefined("tokenize", "jobs") && cfg.Tokenize.Jobs < 0 {
		return nil, true, fmt.Errorf("%s: [tokenize].jobs must not be negative", manifestPath)
	}
	if meta.IsDefined("tokenize", "format") {
		if _, err := readOutputFormat(cfg.Tokenize.Format); err != nil {
			return nil, true, fmt.Errorf("%s: [tokenize].format: %w", manifestPath, err)
		}
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
		meta:   meta,
	}, true, nil
}

// defines reports whether key is set under [tokenize].
func (m *projectManifest) defines(key string) bool {
	return m != nil && m.meta.IsDefined("tokenize", key)
}
