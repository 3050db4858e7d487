package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.load("display.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMenu loads menu.json
func (l *Loader) LoadMenu() (*MenuConfig, error) {
	var cfg MenuConfig
	if err := l.load("menu.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadCutscene loads cutscene.json
func (l *Loader) LoadCutscene() (*CutsceneConfig, error) {
	var cfg CutsceneConfig
	if err := l.load("cutscene.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadGameOver loads gameover.json
func (l *Loader) LoadGameOver() (*GameOverConfig, error) {
	var cfg GameOverConfig
	if err := l.load("gameover.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadPalette loads palette.json
func (l *Loader) LoadPalette() (*PaletteConfig, error) {
	var cfg PaletteConfig
	if err := l.load("palette.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStage loads a stage layout JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.load("stages/"+name+".json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
