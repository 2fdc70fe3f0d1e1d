package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/swanconfig/config"
)

func testDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yml")
	text := `
startup:
  project:
    nr: "01"
cgrid:
  model_type: regular
  grid:
    xlen: 100.0
    ylen: 100.0
    mx: 10
    my: 10
  spectrum:
    mdc: 36
    flow: 0.04
    fhigh: 0.4
lockup:
  compute:
    model_type: nonstat
`
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestRenderOnce(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.Definition = testDefinition(t)
	cfg.Render.OutputDir = t.TempDir()

	path, err := renderOnce(cfg)
	require.NoError(t, err)
	assert.Equal(t, "INPUT", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	input := string(data)
	assert.Contains(t, input, "PROJECT nr='01'")
	assert.Contains(t, input, "CGRID REGULAR")
	assert.True(t, strings.HasSuffix(input, "STOP\n"))
}

func TestRenderOnceBadDefinition(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.Definition = filepath.Join(t.TempDir(), "missing.yml")
	_, err := renderOnce(cfg)
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.Definition = testDefinition(t)

	cmd := NewValidateCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ok")
}
