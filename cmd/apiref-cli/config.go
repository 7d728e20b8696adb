package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-apiref/pkg/render"
)

// config mirrors the optional YAML file passed with -config. Flags given on
// the command line override it.
type config struct {
	Source          string       `yaml:"source"`
	Renderer        string       `yaml:"renderer"`
	Output          string       `yaml:"output"`
	Title           string       `yaml:"title"`
	Validate        bool         `yaml:"validate"`
	AllowEmptyPaths bool         `yaml:"allow_empty_paths"`
	MaxBytes        int64        `yaml:"max_bytes"`
	Methods         []string     `yaml:"methods"`
	LogLevel        string       `yaml:"log_level"`
	Preset          string       `yaml:"preset"`
	Subset          subsetConfig `yaml:"subset"`
	Theme           themeConfig  `yaml:"theme"`
}

type subsetConfig struct {
	Methods []string `yaml:"methods"`
	Tags    []string `yaml:"tags"`
	Paths   []string `yaml:"paths"`
}

type themeConfig struct {
	Manifest string `yaml:"manifest"`
	Name     string `yaml:"name"`
	Variant  string `yaml:"variant"`
}

func (s subsetConfig) routeSubset() render.RouteSubset {
	return render.RouteSubset{
		Methods:      s.Methods,
		Tags:         s.Tags,
		PathPrefixes: s.Paths,
	}
}

func loadConfig(path string) (config, error) {
	var cfg config
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// loadManifest reads a go-theme manifest from YAML or JSON.
func loadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme manifest: %w", err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse theme manifest %s: %w", path, err)
	}
	if manifest.Name == "" {
		return nil, fmt.Errorf("theme manifest %s: name is required", path)
	}
	return &manifest, nil
}
