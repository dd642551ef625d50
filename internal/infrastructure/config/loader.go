package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// SettingsFile is the settings file name looked up by Loader.
const SettingsFile = "relicescape.toml"

// Loader loads settings and data tables through an fs.FS.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads relicescape.toml. A missing file yields the defaults.
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}
	return cfg, nil
}

// LoadTables loads bestiary.yaml, items.yaml and shop.yaml.
// Files absent from the loader's filesystem fall back to the built-in copy.
func (l *Loader) LoadTables() (*Tables, error) {
	raw, err := l.readTable("bestiary.yaml")
	if err != nil {
		return nil, err
	}
	bestiary, err := parseBestiary(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bestiary.yaml: %w", err)
	}

	raw, err = l.readTable("items.yaml")
	if err != nil {
		return nil, err
	}
	items, err := parseItems(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse items.yaml: %w", err)
	}

	raw, err = l.readTable("shop.yaml")
	if err != nil {
		return nil, err
	}
	shop, err := parseShop(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shop.yaml: %w", err)
	}

	t := &Tables{Bestiary: bestiary, Items: items, Shop: shop}
	if err := t.index(); err != nil {
		return nil, fmt.Errorf("invalid tables in %s: %w", l.basePath, err)
	}
	return t, nil
}

func (l *Loader) readTable(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) && l.fsys != builtin {
		data, err = fs.ReadFile(builtin, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// LoadAll loads settings and tables.
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	tables, err := l.LoadTables()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Tables:   tables,
	}, nil
}

// DefaultGameConfig returns the built-in settings and tables.
func DefaultGameConfig() (*GameConfig, error) {
	tables, err := DefaultTables()
	if err != nil {
		return nil, err
	}
	return &GameConfig{Settings: Default(), Tables: tables}, nil
}
