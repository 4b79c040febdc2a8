package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

func resetFlags() {
	configFile, logLevel, logFile, pageSource, evdevPath, fontPath, lang = "", "info", "", "", "", "", ""
	debug, fullscreen = false, false
	width, height = 0, 0
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestCurvesCommand(t *testing.T) {
	out := execute(t, "curves")
	assert.Contains(t, out, "power2.out\n")
	assert.Contains(t, out, "linear\n")
}

func TestConfigCommand_Defaults(t *testing.T) {
	t.Setenv(constants.ConfigPathEnvVar, "")
	out := execute(t, "config")

	var cfg glide.Config
	_, err := toml.Decode(out, &cfg)
	require.NoError(t, err)
	assert.Equal(t, glide.DefaultConfig(), cfg)
}

func TestConfigCommand_FromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glide.toml")
	require.NoError(t, os.WriteFile(path, []byte("ease_factor = 0.3\n"), 0o644))
	t.Setenv(constants.ConfigPathEnvVar, path)

	out := execute(t, "config")
	assert.Contains(t, out, "ease_factor = 0.3")
}

func TestConfigCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glide.toml")
	require.NoError(t, os.WriteFile(path, []byte("ease_factor = 3.0\n"), 0o644))
	resetFlags()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "--config", path})

	err := cmd.Execute()
	assert.True(t, glide.IsConfigError(err))
}

func TestLoadPage_FromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/page.toml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("title = \"Remote\"\n[[sections]]\nid = \"a\"\n"))
	}))
	defer srv.Close()

	page, err := loadPage(context.Background(), srv.URL+"/page.toml")
	require.NoError(t, err)
	assert.Equal(t, "Remote", page.Title)

	_, err = loadPage(context.Background(), srv.URL+"/missing.toml")
	assert.True(t, glide.IsInfrastructureError(err))
}

func TestLoadPage_Default(t *testing.T) {
	page, err := loadPage(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, page.Sections)
}
