// Package configfile loads and saves session settings mappings from
// config files, so a host can pin its default manager and settings
// outside the application. TOML and YAML are supported, selected by file
// extension:
//
//	[manager]
//	identifier = "org.example.mgr"
//
//	[manager.settings]
//	cache = true
//
// Load results feed Session.SetSettings directly; Save accepts what
// Session.GetSettings returns.
package configfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/flexigpt/assethost-go/internal/settings"
	"github.com/flexigpt/assethost-go/spec"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

type fileConfig struct {
	Manager managerConfig `toml:"manager" yaml:"manager"`
}

type managerConfig struct {
	Identifier string         `toml:"identifier"         yaml:"identifier"`
	Settings   map[string]any `toml:"settings,omitempty" yaml:"settings,omitempty"`
}

// Load reads a session settings mapping from path. The returned mapping
// always carries the reserved manager-identifier entry ("" when the file
// does not name a manager).
func Load(path string) (spec.SettingsMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	switch ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("file: %s", path))
	}

	return settings.Merge(strings.TrimSpace(cfg.Manager.Identifier), cfg.Manager.Settings), nil
}

// Save writes a session settings mapping to path, in the format named by
// the file extension. The reserved entry becomes the manager identifier;
// all other entries go under the settings table.
func Save(path string, all spec.SettingsMap) error {
	identifier, managerSettings, err := settings.Split(all)
	if err != nil {
		return err
	}

	cfg := fileConfig{Manager: managerConfig{
		Identifier: identifier,
		Settings:   managerSettings,
	}}

	var data []byte
	switch ext(path) {
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return errors.Join(ErrUnsupportedFormat, fmt.Errorf("file: %s", path))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
