package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/kvjson/internal/app"
	"github.com/zjrosen/kvjson/internal/config"
	"github.com/zjrosen/kvjson/internal/keys"
	"github.com/zjrosen/kvjson/internal/log"
	"github.com/zjrosen/kvjson/internal/output"
	"github.com/zjrosen/kvjson/internal/ui/frame"
)

// isolate points the working directory and HOME at empty temp dirs so no
// real config file is picked up.
func isolate(t *testing.T) (workDir, home string) {
	t.Helper()
	workDir, home = t.TempDir(), t.TempDir()
	t.Chdir(workDir)
	t.Setenv("HOME", home)
	return workDir, home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := loadConfig(viper.New(), "")

	require.NoError(t, err)
	require.Equal(t, config.Defaults(), cfg)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "ui:\n  title: Inventory\n  key_width: 12\n")

	cfg, err := loadConfig(viper.New(), path)

	require.NoError(t, err)
	require.Equal(t, "Inventory", cfg.UI.Title)
	require.Equal(t, 12, cfg.UI.KeyWidth)
	require.True(t, cfg.UI.ShowCount)
	require.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	isolate(t)

	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_LocalBeatsUser(t *testing.T) {
	workDir, home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "kvjson", "config.yaml"), "output:\n  format: yaml\n")
	writeFile(t, filepath.Join(workDir, ".kvjson", "config.yaml"), "keys:\n  quit: x\n")

	cfg, err := loadConfig(viper.New(), "")

	require.NoError(t, err)
	require.Equal(t, "x", cfg.Keys.Quit)
	require.Equal(t, "json", cfg.Output.Format, "user config is not merged when a local one exists")
}

func TestLoadConfig_UserConfig(t *testing.T) {
	_, home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "kvjson", "config.yaml"), "output:\n  format: yaml\n")

	cfg, err := loadConfig(viper.New(), "")

	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "ui: [unclosed\n")

	_, err := loadConfig(viper.New(), path)

	require.Error(t, err)
}

// finishedModel drives a model through committing pairs and answering the
// exit prompt.
func finishedModel(t *testing.T, answer string, pairs ...[2]string) app.Model {
	t.Helper()
	keys.ResetForTesting()

	var m tea.Model = app.New(frame.Options{})
	typeKeys := func(s string) {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	enter := func() {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}

	for _, p := range pairs {
		typeKeys("e")
		typeKeys(p[0])
		enter()
		typeKeys(p[1])
		enter()
	}
	typeKeys("q")
	typeKeys(answer)
	return m.(app.Model)
}

func TestEmit_PrintsOneLine(t *testing.T) {
	var buf bytes.Buffer
	m := finishedModel(t, "y", [2]string{"name", "Ann"})

	require.NoError(t, emit(&buf, m, output.FormatJSON))

	require.Equal(t, "{\"name\":\"Ann\"}\n", buf.String())
}

func TestEmit_EmptyBuffer(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, emit(&buf, finishedModel(t, "y"), output.FormatJSON))

	require.Equal(t, "{}\n", buf.String())
}

func TestEmit_YAML(t *testing.T) {
	var buf bytes.Buffer
	m := finishedModel(t, "y", [2]string{"b", "2"}, [2]string{"a", "1"})

	require.NoError(t, emit(&buf, m, output.FormatYAML))

	require.Equal(t, "{a: \"1\", b: \"2\"}\n", buf.String())
}

func TestEmit_DiscardWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	m := finishedModel(t, "n", [2]string{"secret", "hidden"})

	require.NoError(t, emit(&buf, m, output.FormatJSON))

	require.Empty(t, buf.String())
}

func TestEmit_UnfinishedWritesNothing(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, emit(&buf, app.New(frame.Options{}), output.FormatJSON))

	require.Empty(t, buf.String())
}

func TestConfigInit_WritesTemplate(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "kvjson", "config.yaml")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		configForce = false
	})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))
	require.Contains(t, out.String(), "Wrote "+path)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "keep: me\n")
	rootCmd.SetArgs([]string{"config", "init", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configForce = false
	})

	err := rootCmd.Execute()

	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "keep: me\n", string(data))
}

func TestConfigInitPath_DefaultsToUserConfig(t *testing.T) {
	_, home := isolate(t)

	path, err := configInitPath(nil)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "kvjson", "config.yaml"), path)
}

func TestInitLogging_LevelFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("KVJSON_DEBUG", "1")
	t.Setenv("KVJSON_LOG", path)
	t.Setenv("KVJSON_LOG_LEVEL", "warn")

	cleanup, err := initLogging()
	require.NoError(t, err)
	log.Info(log.CatSession, "quiet info")
	log.Warn(log.CatSession, "loud warning")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "[INFO]")
	require.Contains(t, string(data), "[WARN] [session] loud warning")
}

func TestInitLogging_UnknownLevelIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("KVJSON_DEBUG", "1")
	t.Setenv("KVJSON_LOG", path)
	t.Setenv("KVJSON_LOG_LEVEL", "loud")

	cleanup, err := initLogging()
	require.NoError(t, err)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Ignoring KVJSON_LOG_LEVEL value=loud")
	require.Contains(t, string(data), "kvjson starting")
}

func TestInitLogging_DisabledByDefault(t *testing.T) {
	t.Setenv("KVJSON_DEBUG", "")

	cleanup, err := initLogging()

	require.NoError(t, err)
	require.NotPanics(t, cleanup)
}

func TestFormatFlag_ListsFormats(t *testing.T) {
	require.Contains(t, rootCmd.Flags().Lookup("format").Usage, "json, yaml")
}
