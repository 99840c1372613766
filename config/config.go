// Package config loads oporder settings from a YAML file.
//
// The default file is $XDG_CONFIG_HOME/oporder/config.yaml. A missing default
// file is not an error; the defaults are used instead.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/takoeight0821/oporder/eval"
	"gopkg.in/yaml.v3"
)

const appName = "oporder"

type Config struct {
	Modes   []string `yaml:"modes"`
	Lenient bool     `yaml:"lenient"`
	Jobs    int      `yaml:"jobs"`
	History string   `yaml:"history"`
	Log     Log      `yaml:"log"`
}

type Log struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Journal bool   `yaml:"journal"`
}

func Default() Config {
	return Config{
		Modes:   []string{eval.FlatMode.String(), eval.PrecedenceMode.String()},
		History: filepath.Join(xdg.DataHome, appName, "history"),
		Log:     Log{Level: "info"},
	}
}

// DefaultPath returns the config file path under the XDG config directories,
// or "" if no such file exists.
func DefaultPath() string {
	path, err := xdg.SearchConfigFile(filepath.Join(appName, "config.yaml"))
	if err != nil {
		return ""
	}

	return path
}

// Load reads the config file at path on top of Default. An empty path means DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML settings from r on top of Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if len(c.Modes) == 0 {
		errs = append(errs, errors.New("modes: at least one mode is required"))
	}
	for _, name := range c.Modes {
		if _, err := eval.ParseMode(name); err != nil {
			errs = append(errs, fmt.Errorf("modes: %w", err))
		}
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs: must not be negative, got %d", c.Jobs))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// Evaluators returns one evaluator per configured mode, in order.
func (c Config) Evaluators() ([]eval.Evaluator, error) {
	evaluators := make([]eval.Evaluator, 0, len(c.Modes))
	for _, name := range c.Modes {
		mode, err := eval.ParseMode(name)
		if err != nil {
			return nil, err
		}
		evaluators = append(evaluators, eval.Evaluator{Mode: mode, Lenient: c.Lenient})
	}

	return evaluators, nil
}
