package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultIndent, cfg.Format.Indent)
	assert.Equal(t, TypeNamesFull, cfg.Format.TypeNames)
	assert.Equal(t, DefaultOutputDir, cfg.Output.Dir)
	assert.Empty(t, cfg.Output.Archive)
	assert.Equal(t, DefaultEncoding, cfg.Output.Encoding)
	assert.Equal(t, DefaultDebounceMS, cfg.Watch.DebounceMS)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFile)
	writeFile(t, path, `
[format]
indent = "  "
type_names = "simple"

[output]
archive = "out/gen.zip"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "  ", cfg.Format.Indent)
	assert.Equal(t, TypeNamesSimple, cfg.Format.TypeNames)
	assert.Equal(t, "out/gen.zip", cfg.Output.Archive)
	assert.Equal(t, DefaultOutputDir, cfg.Output.Dir, "unset keys keep their defaults")
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[format]\ntype_names = \"short\"\n")
	_, err = LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format.type_names")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"zero config is valid", Config{}, false},
		{"simple type names", Config{Format: FormatConfig{TypeNames: TypeNamesSimple}}, false},
		{"unknown type names", Config{Format: FormatConfig{TypeNames: "short"}}, true},
		{"tab indent", Config{Format: FormatConfig{Indent: "\t"}}, false},
		{"indent with newline", Config{Format: FormatConfig{Indent: "\n"}}, true},
		{"upper-case encoding", Config{Output: OutputConfig{Encoding: "UTF-8"}}, false},
		{"latin1 encoding", Config{Output: OutputConfig{Encoding: "iso-8859-1"}}, true},
		{"zero debounce is valid (disabled)", Config{Watch: WatchConfig{DebounceMS: 0}}, false},
		{"negative debounce", Config{Watch: WatchConfig{DebounceMS: -5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Empty(t, FindProjectConfig(nested))

	path := filepath.Join(root, "a", ProjectFile)
	writeFile(t, path, "")
	assert.Equal(t, path, FindProjectConfig(nested))
}

func TestMergeConfigFiles_Precedence(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	project := filepath.Join(dir, "project.toml")
	writeFile(t, user, "[format]\nindent = \"\\t\"\ntype_names = \"simple\"\n")
	writeFile(t, project, "[format]\ntype_names = \"full\"\n")

	v := viper.New()
	SetDefaults(v)
	mergeConfigFiles(v, []string{filepath.Join(dir, "absent.toml"), user, project})

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Format.Indent)
	assert.Equal(t, TypeNamesFull, cfg.Format.TypeNames)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("JCM_OUTPUT_DIR", "build/generated")
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "build/generated", cfg.Output.Dir)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}
