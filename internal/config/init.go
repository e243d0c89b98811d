package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
)

const initHeader = "# barrelgen configuration\n# Patterns are globs matched against POSIX paths; `**` crosses directories.\n"

// Init writes an example configuration file. An existing file is kept unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		DefaultBarrelName: "",
		ExcludeDirList:    []string{"**/generated"},
		ExcludeFileList:   []string{"**/*_test.dart"},
		ExcludeFreezed:    true,
		ExcludeGenerated:  true,
		SkipEmpty:         true,
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	if err := os.WriteFile(configPath, append([]byte(initHeader), data...), 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
