package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSystem       = "koch"
	DefaultIterations   = 3
	DefaultCanvasWidth  = 80
	DefaultCanvasHeight = 24
	DefaultSVGWidth     = 800
	DefaultSVGHeight    = 600
	DefaultStroke       = "#00ff00"
)

type Config struct {
	System     string       `yaml:"system"`
	Iterations int          `yaml:"iterations"`
	Canvas     CanvasConfig `yaml:"canvas"`
	SVG        SVGConfig    `yaml:"svg"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SVGConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Stroke string `yaml:"stroke"`
}

func DefaultConfig() *Config {
	return &Config{
		System:     DefaultSystem,
		Iterations: DefaultIterations,
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
		},
		SVG: SVGConfig{
			Width:  DefaultSVGWidth,
			Height: DefaultSVGHeight,
			Stroke: DefaultStroke,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
