package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ExtractorConfig controls document text extraction.
type ExtractorConfig struct {
	Workers  int  `yaml:"workers"`
	FailFast bool `yaml:"fail_fast"`
}

// KeywordsConfig controls the job description keyword signal.
type KeywordsConfig struct {
	Count int `yaml:"count"`
}

// RankerConfig controls similarity ranking.
type RankerConfig struct {
	StopWords *bool `yaml:"stop_words,omitempty"`
}

// PreviewConfig controls the top candidate preview.
type PreviewConfig struct {
	Chars int `yaml:"chars"`
}

// SummaryConfig controls the top candidate summary. Zero sentences disables it.
type SummaryConfig struct {
	Sentences int `yaml:"sentences"`
}

// ExportConfig controls CSV export.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Extractor ExtractorConfig `yaml:"extractor"`
	Keywords  KeywordsConfig  `yaml:"keywords"`
	Ranker    RankerConfig    `yaml:"ranker"`
	Preview   PreviewConfig   `yaml:"preview"`
	Summary   SummaryConfig   `yaml:"summary"`
	Export    ExportConfig    `yaml:"export"`
}

// RemoveStopWords reports whether the ranker drops stop words. Defaults to true.
func (c *AppConfig) RemoveStopWords() bool {
	return c.Ranker.StopWords == nil || *c.Ranker.StopWords
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied last.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withEnv(defaultConfig())
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return withEnv(&cfg)
}

// LoadDefault tries ./config.yaml first, then ~/.config/screener/config.yaml.
// If neither exists, it writes defaults to ~/.config/screener/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	cfg, err = withEnv(cfg)
	return cfg, userPath, err
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values that would make a screening run fail.
func (c *AppConfig) Validate() error {
	if c.Keywords.Count < 1 {
		return fmt.Errorf("keywords.count must be at least 1, got %d", c.Keywords.Count)
	}
	if c.Extractor.Workers < 1 {
		return fmt.Errorf("extractor.workers must be at least 1, got %d", c.Extractor.Workers)
	}
	if c.Summary.Sentences < 0 {
		return fmt.Errorf("summary.sentences must not be negative, got %d", c.Summary.Sentences)
	}
	if c.Preview.Chars < 0 {
		return fmt.Errorf("preview.chars must not be negative, got %d", c.Preview.Chars)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "screener", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	stop := true
	return &AppConfig{
		Extractor: ExtractorConfig{Workers: 4},
		Keywords:  KeywordsConfig{Count: 10},
		Ranker:    RankerConfig{StopWords: &stop},
		Preview:   PreviewConfig{Chars: 1000},
		Summary:   SummaryConfig{Sentences: 3},
		Export:    ExportConfig{Path: "resume_ranking_results.csv"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Extractor.Workers == 0 {
		cfg.Extractor.Workers = 4
	}
	if cfg.Keywords.Count == 0 {
		cfg.Keywords.Count = 10
	}
	if cfg.Preview.Chars == 0 {
		cfg.Preview.Chars = 1000
	}
	if cfg.Export.Path == "" {
		cfg.Export.Path = "resume_ranking_results.csv"
	}
}

func withEnv(cfg *AppConfig) (*AppConfig, error) {
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("SCREENER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCREENER_WORKERS: %w", err)
		}
		cfg.Extractor.Workers = n
	}
	if v := os.Getenv("SCREENER_KEYWORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCREENER_KEYWORDS: %w", err)
		}
		cfg.Keywords.Count = n
	}
	return nil
}
