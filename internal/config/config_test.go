package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VIENNASUITES_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "viennasuites", "viennasuites.db"), cfg.Database.Path)
	require.Equal(t, 150*time.Millisecond, cfg.Reveal.StepAbout)
	require.Equal(t, 100*time.Millisecond, cfg.Reveal.StepAmenities)
	require.Equal(t, 500*time.Millisecond, cfg.Carousel.Transition)
	require.Equal(t, 1500*time.Millisecond, cfg.Submit.Delay)
	require.Equal(t, 16*time.Millisecond, cfg.UI.Frame)
	require.Empty(t, cfg.Content.Path)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[carousel]
transition = "600ms"

[submit]
delay = "0s"
`), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("VIENNASUITES_CONFIG", path)
	t.Setenv("VIENNASUITES_DATABASE_PATH", filepath.Join(dir, "env.db"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 600*time.Millisecond, cfg.Carousel.Transition)
	require.Equal(t, time.Duration(0), cfg.Submit.Delay)
	require.Equal(t, filepath.Join(dir, "env.db"), cfg.Database.Path)
}

func TestLoadRejectsInvalidTransition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel]\ntransition = \"-1s\"\n"), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("VIENNASUITES_CONFIG", path)

	_, err := Load()
	require.ErrorContains(t, err, "carousel.transition")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel\ntransition = \n"), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("VIENNASUITES_CONFIG", path)

	_, err := Load()
	require.ErrorContains(t, err, "read config")
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("VIENNASUITES_CONFIG", filepath.Join(dir, "absent.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, cfg.Carousel.Transition)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("HOME", dir)
	t.Setenv("VIENNASUITES_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Carousel.Transition = 550 * time.Millisecond
	cfg.Content.Path = "/srv/catalog.yaml"
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, 550*time.Millisecond, again.Carousel.Transition)
	require.Equal(t, "/srv/catalog.yaml", again.Content.Path)
}
