// Package config loads the optional forge.yaml file that sits next to a
// designer document and resolves generation defaults from it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional forge.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Codegen CodegenConfig `yaml:"codegen"`
}

// AppConfig contains metadata baked into generated programs.
type AppConfig struct {
	Name   string `yaml:"name,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// CodegenConfig contains code-generation defaults.
type CodegenConfig struct {
	Module   string `yaml:"module,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Comments *bool  `yaml:"comments,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	AppName    string
	Width      int
	Height     int
	ModulePath string
	Format     string
	Comments   bool
}

// LoadOptional reads forge.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "forge.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read forge.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse forge.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads forge.yaml (if present) and fills in defaults. The app name
// falls back to the directory basename; the module path falls back to
// example.com/<name> when absent, and is rejected when present but invalid.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(dir)
	}

	modulePath := strings.TrimSpace(cfg.Codegen.Module)
	if modulePath == "" {
		modulePath = defaultModulePath(appName)
	} else if err := module.CheckPath(modulePath); err != nil {
		return nil, fmt.Errorf("invalid codegen.module in forge.yaml: %w", err)
	}

	format := strings.TrimSpace(cfg.Codegen.Format)
	if format == "" {
		format = "single"
	}

	comments := true
	if cfg.Codegen.Comments != nil {
		comments = *cfg.Codegen.Comments
	}

	width, height := cfg.App.Width, cfg.App.Height
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 800
	}

	return &Resolved{
		Root:       dir,
		AppName:    appName,
		Width:      width,
		Height:     height,
		ModulePath: modulePath,
		Format:     format,
		Comments:   comments,
	}, nil
}

func defaultAppName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	base := filepath.Base(abs)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "forge_app"
	}
	return base
}

func defaultModulePath(appName string) string {
	seg := sanitizeSegment(appName)
	if module.CheckPath("example.com/"+seg) != nil {
		return "example.com/generated-ui"
	}
	return "example.com/" + seg
}

func sanitizeSegment(segment string) string {
	segment = strings.ToLower(strings.TrimSpace(segment))
	var out []rune
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "app"
	}
	return string(out)
}
