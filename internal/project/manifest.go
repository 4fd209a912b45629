package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the compiler looks for when no explicit
// input is given.
const ManifestName = "flux.toml"

// DefaultEntry is the source file a manifest points at when [build]
// leaves it unset.
const DefaultEntry = "src/main.fl"

// Manifest is a loaded flux.toml plus where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the flux.toml schema.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// BuildConfig carries compile defaults; command-line flags override
// every field.
type BuildConfig struct {
	Entry  string `toml:"entry"`
	Opt    int    `toml:"opt"`
	Target string `toml:"target"`
}

// Find walks from startDir toward the filesystem root looking for a
// manifest. The boolean reports whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
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

// Load finds and parses the nearest manifest above startDir. The
// boolean reports whether a manifest exists at all; a found but
// malformed manifest returns true with the parse error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Build.Entry == "" {
		cfg.Build.Entry = DefaultEntry
	}
	if cfg.Build.Opt < 0 || cfg.Build.Opt > 3 {
		return Config{}, fmt.Errorf("%s: [build].opt must be between 0 and 3", path)
	}
	return cfg, nil
}

// EntryPath resolves the manifest's entry file relative to its root.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Entry))
}
