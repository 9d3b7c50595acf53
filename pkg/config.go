package semtag

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the optional per-repository configuration file, looked up at
// the repository root.
const ConfigFile = ".semtag.toml"

// Config holds per-repository settings. Every field has a default, so a
// missing or partial file is fine.
type Config struct {
	Tag struct {
		// Prefix is used only when seeding a first tag; subsequent tags
		// reuse the prefix of the tag they succeed.
		Prefix string `toml:"prefix"`
		// Message is the annotation message for created tags.
		Message string `toml:"message"`
		// Filter is a default version constraint applied when scanning.
		Filter string `toml:"filter"`
	} `toml:"tag"`
	Branch struct {
		// Allowed lists the branches tags may be created on.
		Allowed []string `toml:"allowed"`
	} `toml:"branch"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() Config {
	var c Config
	c.Tag.Prefix = "v"
	c.Tag.Message = "Tag created by semtag"
	c.Branch.Allowed = []string{"master", "main"}
	return c
}

// LoadConfig reads .semtag.toml from dir, merged over the defaults. A
// missing file yields the defaults; a malformed one is an error.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(dir, ConfigFile)

	var parsed Config
	meta, err := toml.DecodeFile(path, &parsed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(meta.Undecoded()) > 0 {
		return Config{}, fmt.Errorf("%s: unknown keys: %v", path, meta.Undecoded())
	}

	if meta.IsDefined("tag", "prefix") {
		cfg.Tag.Prefix = parsed.Tag.Prefix
	}
	if meta.IsDefined("tag", "message") {
		cfg.Tag.Message = parsed.Tag.Message
	}
	if meta.IsDefined("tag", "filter") {
		cfg.Tag.Filter = parsed.Tag.Filter
	}
	if meta.IsDefined("branch", "allowed") {
		cfg.Branch.Allowed = parsed.Branch.Allowed
	}
	return cfg, nil
}
