package config

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 640
	DefaultHeight        = 480
	DefaultMaxIterations = 100
	DefaultPalette       = "spectrum"
	DefaultRegion        = "overview"
	DefaultDataDir       = ".fractview"
)

type Config struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	MaxIterations int    `yaml:"max_iterations"`
	Workers       int    `yaml:"workers"`
	Palette       string `yaml:"palette"`
	Region        string `yaml:"region"`
	DataDir       string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxIterations: DefaultMaxIterations,
		Workers:       runtime.NumCPU(),
		Palette:       DefaultPalette,
		Region:        DefaultRegion,
		DataDir:       DefaultDataDir,
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
