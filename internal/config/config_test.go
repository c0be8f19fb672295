package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultInputPath, cfg.InputPath)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, DefaultExportDir, cfg.ExportDir)
	assert.False(t, cfg.StrictCategories)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestLoadEnvironment(t *testing.T) {
	cfg, err := Load(nil, envMap(map[string]string{
		EnvInput:            "/data/loans.csv",
		EnvOutput:           "/tmp/out.csv",
		EnvExportDir:        "/tmp/charts",
		EnvStrictCategories: "true",
		EnvLogLevel:         "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/data/loans.csv", cfg.InputPath)
	assert.Equal(t, "/tmp/out.csv", cfg.OutputPath)
	assert.Equal(t, "/tmp/charts", cfg.ExportDir)
	assert.True(t, cfg.StrictCategories)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
}

func TestLoadArgumentsOverrideEnvironment(t *testing.T) {
	env := envMap(map[string]string{EnvInput: "/data/env.csv", EnvDebug: "1"})

	cfg, err := Load([]string{"-out", "mine.csv", "-strict", "arg.csv"}, env)
	require.NoError(t, err)

	assert.Equal(t, "arg.csv", cfg.InputPath)
	assert.Equal(t, "mine.csv", cfg.OutputPath)
	assert.True(t, cfg.StrictCategories)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(nil, envMap(map[string]string{EnvStrictCategories: "maybe"}))
	assert.Error(t, err)

	_, err = Load([]string{"-nope"}, envMap(nil))
	assert.Error(t, err)
}

func TestLoadAcceptsFlagsAfterInputPath(t *testing.T) {
	cfg, err := Load([]string{"data.csv", "-strict", "-export-dir", "charts"}, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "data.csv", cfg.InputPath)
	assert.True(t, cfg.StrictCategories)
	assert.Equal(t, "charts", cfg.ExportDir)
}

func TestLoadRejectsExtraPositionalArguments(t *testing.T) {
	_, err := Load([]string{"a.csv", "b.csv"}, envMap(nil))
	assert.Error(t, err)

	_, err = Load([]string{"a.csv", "-strict", "b.csv"}, envMap(nil))
	assert.Error(t, err)
}

func TestLoadTreatsArgumentsAfterDoubleDashAsPositional(t *testing.T) {
	cfg, err := Load([]string{"-strict", "--", "-odd-name.csv"}, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "-odd-name.csv", cfg.InputPath)
	assert.True(t, cfg.StrictCategories)
}
