package testing

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/barrelgen/internal/config"
)

// ConfigBuilder provides a fluent interface for creating test configurations
type ConfigBuilder struct {
	config config.Config
	t      *testing.T
}

// NewConfigBuilder starts from config.Default()
func NewConfigBuilder(t *testing.T) *ConfigBuilder {
	return &ConfigBuilder{config: config.Default(), t: t}
}

func (cb *ConfigBuilder) WithDefaultBarrelName(name string) *ConfigBuilder {
	cb.config.DefaultBarrelName = name
	return cb
}

func (cb *ConfigBuilder) WithFolderPrefix() *ConfigBuilder {
	cb.config.PrependFolderName = true
	return cb
}

func (cb *ConfigBuilder) WithFolderSuffix() *ConfigBuilder {
	cb.config.AppendFolderName = true
	return cb
}

func (cb *ConfigBuilder) ExcludingDirs(patterns ...string) *ConfigBuilder {
	cb.config.ExcludeDirList = append(cb.config.ExcludeDirList, patterns...)
	return cb
}

func (cb *ConfigBuilder) ExcludingFiles(patterns ...string) *ConfigBuilder {
	cb.config.ExcludeFileList = append(cb.config.ExcludeFileList, patterns...)
	return cb
}

func (cb *ConfigBuilder) ExcludingFreezed() *ConfigBuilder {
	cb.config.ExcludeFreezed = true
	return cb
}

func (cb *ConfigBuilder) ExcludingGenerated() *ConfigBuilder {
	cb.config.ExcludeGenerated = true
	return cb
}

func (cb *ConfigBuilder) SkippingEmpty() *ConfigBuilder {
	cb.config.SkipEmpty = true
	return cb
}

func (cb *ConfigBuilder) WithPackageExports() *ConfigBuilder {
	cb.config.PrependPackageToLibExport = true
	return cb
}

// Build returns the configuration
func (cb *ConfigBuilder) Build() config.Config {
	return cb.config
}

// BuildAndSave builds the configuration and saves it to a file
func (cb *ConfigBuilder) BuildAndSave(filePath string) config.Config {
	cb.t.Helper()
	data, err := yaml.Marshal(&cb.config)
	if err != nil {
		cb.t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filePath, data, testFilePermissions); err != nil {
		cb.t.Fatalf("Failed to save config to %s: %v", filePath, err)
	}
	return cb.config
}
