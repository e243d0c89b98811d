// Package config defines the barrel generation settings and loads them from
// YAML or JSON files.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
)

// DefaultFilename is the configuration file written by `barrelgen init`.
const DefaultFilename = "barrelgen.yaml"

// Config is the immutable option set consulted on every generation.
type Config struct {
	// AppendFolderName suffixes the barrel name with "_<folder>".
	AppendFolderName bool `yaml:"appendFolderName"`

	// PrependFolderName prefixes the barrel name with "<folder>_".
	PrependFolderName bool `yaml:"prependFolderName"`

	// DefaultBarrelName replaces the folder name as the barrel base name.
	DefaultBarrelName string `yaml:"defaultBarrelName"`

	// Glob patterns for directories that are never descended into and files that are never exported.
	ExcludeDirList  []string `yaml:"excludeDirList"`
	ExcludeFileList []string `yaml:"excludeFileList"`

	ExcludeFreezed   bool `yaml:"excludeFreezed"`
	ExcludeGenerated bool `yaml:"excludeGenerated"`

	// PrependPackageToLibExport switches library-root barrels to package: URIs.
	PrependPackageToLibExport bool `yaml:"prependPackageToLibExport"`

	// SkipEmpty suppresses barrels for directories with nothing to export.
	SkipEmpty bool `yaml:"skipEmpty"`

	// PromptName is an editor setting; accepted so shared files decode, otherwise unused.
	PromptName bool `yaml:"promptName,omitempty"`
}

// Default returns the zero option set: every flag off, no exclusions.
func Default() Config {
	return Config{}
}

// Load reads a configuration file. JSON documents are accepted since they are valid YAML.
// ${VAR} references are expanded from the environment after .env files are loaded.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigError("configuration file not found").
			WithContext("path", configPath).
			Build()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read configuration file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to load configuration file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.DefaultBarrelName = strings.TrimSpace(c.DefaultBarrelName)
	c.ExcludeDirList = trimPatterns(c.ExcludeDirList)
	c.ExcludeFileList = trimPatterns(c.ExcludeFileList)
}

func trimPatterns(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Validate checks values that cannot be expressed through the YAML types alone.
// Glob syntax is checked when patterns are compiled for a run.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.DefaultBarrelName, `/\`) {
		return errors.ValidationError("defaultBarrelName must not contain path separators").
			WithContext("defaultBarrelName", c.DefaultBarrelName).
			Build()
	}
	return nil
}
