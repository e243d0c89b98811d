package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/barrelgen/internal/config"
	fixtures "git.home.luguber.info/inful/barrelgen/internal/testing"
)

func TestLoadSavedConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		builder func(t *testing.T) *fixtures.ConfigBuilder
	}{
		{
			name: "defaults",
			builder: func(t *testing.T) *fixtures.ConfigBuilder {
				return fixtures.NewConfigBuilder(t)
			},
		},
		{
			name: "every option set",
			builder: func(t *testing.T) *fixtures.ConfigBuilder {
				return fixtures.NewConfigBuilder(t).
					WithDefaultBarrelName("index").
					WithFolderPrefix().
					WithFolderSuffix().
					ExcludingDirs("**/generated").
					ExcludingFiles("**/*_test.dart", "lib/src/internal.dart").
					ExcludingFreezed().
					ExcludingGenerated().
					SkippingEmpty().
					WithPackageExports()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.DefaultFilename)
			want := tt.builder(t).BuildAndSave(path)

			cfg, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, *cfg)
		})
	}
}
