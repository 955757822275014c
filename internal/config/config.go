package config

import (
	"os"
	"time"

	"github.com/san-kum/retrosh/internal/console"
	"github.com/san-kum/retrosh/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMessageInterval  = 1500 * time.Millisecond
	DefaultProgressInterval = 50 * time.Millisecond
	DefaultProgressStep     = 2
	DefaultHistoryLimit     = 100
)

type Config struct {
	Theme     string          `yaml:"theme"`
	Prompt    string          `yaml:"prompt"`
	SkipBoot  bool            `yaml:"skip_boot"`
	Sound     bool            `yaml:"sound"`
	History   int             `yaml:"history_limit"`
	Boot      BootConfig      `yaml:"boot"`
	Typewrite TypewriteConfig `yaml:"typewriter"`
	Log       LogConfig       `yaml:"log"`
}

type BootConfig struct {
	MessageInterval  time.Duration `yaml:"message_interval"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
	ProgressStep     int           `yaml:"progress_step"`
	Messages         []string      `yaml:"messages,omitempty"`
}

type TypewriteConfig struct {
	CharDelay time.Duration `yaml:"char_delay"`
	LineDelay time.Duration `yaml:"line_delay"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:   theme.Default().Name,
		Prompt:  console.DefaultPrompt,
		Sound:   true,
		History: DefaultHistoryLimit,
		Boot: BootConfig{
			MessageInterval:  DefaultMessageInterval,
			ProgressInterval: DefaultProgressInterval,
			ProgressStep:     DefaultProgressStep,
		},
		Typewrite: TypewriteConfig{
			CharDelay: console.DefaultCharDelay,
			LineDelay: console.DefaultLineDelay,
		},
		Log: LogConfig{Level: "info"},
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

// ApplyPreset overwrites the timing fields with those of a named preset.
func (c *Config) ApplyPreset(name string) error {
	p, err := GetPreset(name)
	if err != nil {
		return err
	}
	c.Boot.MessageInterval = p.Boot.MessageInterval
	c.Boot.ProgressInterval = p.Boot.ProgressInterval
	c.Boot.ProgressStep = p.Boot.ProgressStep
	c.Typewrite = p.Typewrite
	return nil
}

func (c *Config) ConsoleOptions() console.Options {
	return console.Options{
		Prompt:       c.Prompt,
		Theme:        c.Theme,
		CharDelay:    c.Typewrite.CharDelay,
		LineDelay:    c.Typewrite.LineDelay,
		HistoryLimit: c.History,
	}
}
