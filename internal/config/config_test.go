package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr bool
	}{
		{
			name:  "empty document yields defaults",
			input: "",
			want:  Default(),
		},
		{
			name: "yaml keys",
			input: `
appendFolderName: true
defaultBarrelName: index
excludeDirList: ["**/generated"]
excludeFileList:
  - "**/*_test.dart"
  - "  "
skipEmpty: true
`,
			want: Config{
				AppendFolderName:  true,
				DefaultBarrelName: "index",
				ExcludeDirList:    []string{"**/generated"},
				ExcludeFileList:   []string{"**/*_test.dart"},
				SkipEmpty:         true,
			},
		},
		{
			name:  "json document",
			input: `{"excludeFreezed": true, "excludeGenerated": true, "prependPackageToLibExport": true}`,
			want: Config{
				ExcludeFreezed:            true,
				ExcludeGenerated:          true,
				PrependPackageToLibExport: true,
			},
		},
		{
			name:  "editor-only key is tolerated",
			input: "promptName: true\n",
			want:  Config{PromptName: true},
		},
		{
			name:    "unknown key is rejected",
			input:   "skipEmty: true\n",
			wantErr: true,
		},
		{
			name:    "barrel name with separator",
			input:   "defaultBarrelName: a/b\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})

	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("BARRELGEN_TEST_NAME", "exports")
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("defaultBarrelName: ${BARRELGEN_TEST_NAME}\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "exports", cfg.DefaultBarrelName)
	})

	t.Run("decode failure is a config error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"skipEmpty": "maybe"}`), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		classified, ok := errors.AsClassified(err)
		require.True(t, ok)
		assert.Equal(t, errors.CategoryConfig, classified.Category())
		assert.Equal(t, "failed to load configuration file", classified.Message())
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.SkipEmpty)
	assert.Equal(t, []string{"**/generated"}, cfg.ExcludeDirList)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))

	require.NoError(t, Init(path, true))
}
