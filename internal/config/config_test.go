package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(wd)

	assert.NoError(t, os.Chdir(t.TempDir()))

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Equal(t, "", cfg.DumpAST)
}

func TestLoadExplicitMissingFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lume.yaml")
	data := "prompt: \"lume> \"\ndump_ast: out/ast.txt\n"
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "lume> ", cfg.Prompt)
	assert.Equal(t, "out/ast.txt", cfg.DumpAST)
}

func TestLoadEmptyPromptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lume.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("dump_ast: ast.txt\n"), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
}
