package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	EnvConfigPath,
	"LOG_LEVEL", "LOG_FORMAT", "NO_COLOR", "FILE_MODE", "FFMPEG_PATH", "FFPROBE_PATH",
	"SUBRIPTEXT_LOG_LEVEL", "SUBRIPTEXT_LOG_FORMAT", "SUBRIPTEXT_NO_COLOR",
	"SUBRIPTEXT_FILE_MODE", "SUBRIPTEXT_FFMPEG_PATH", "SUBRIPTEXT_FFPROBE_PATH",
}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	inTempDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.NoColor)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), mode)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	clearEnv(t)
	dir := inTempDir(t)

	yml := "log_level: debug\nno_color: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(yml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "console", cfg.LogFormat, "absent keys keep defaults")
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	clearEnv(t)
	dir := inTempDir(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(EnvConfigPath, filepath.Join(dir, "also-missing.yaml"))
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := inTempDir(t)

	path := filepath.Join(dir, "custom.yaml")
	yml := "log_level: warn\nlog_format: json\nfile_mode: \"0600\"\nffmpeg_path: /opt/ffmpeg\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Setenv(EnvConfigPath, path)
	t.Setenv("SUBRIPTEXT_LOG_LEVEL", "ERROR")
	t.Setenv("SUBRIPTEXT_FFPROBE_PATH", "/usr/local/bin/ffprobe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/opt/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "/usr/local/bin/ffprobe", cfg.FFprobePath)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), mode)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := inTempDir(t)

	dotenv := "SUBRIPTEXT_LOG_FORMAT=json\nSUBRIPTEXT_NO_COLOR=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultDotEnvFile), []byte(dotenv), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.NoColor)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"bad level", "log_level: chatty\n"},
		{"bad format", "log_format: xml\n"},
		{"bad mode", "file_mode: \"rw-r--r--\"\n"},
		{"mode out of range", "file_mode: \"7777\"\n"},
		{"bad yaml", "log_level: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := inTempDir(t)
			path := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yml), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoggingOptions(t *testing.T) {
	cfg := Default()
	cfg.NoColor = true
	opts := cfg.LoggingOptions()
	assert.Equal(t, "info", opts.Level)
	assert.Equal(t, "console", opts.Format)
	assert.True(t, opts.NoColor)
}
