package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/kvjson/internal/app"
	"github.com/zjrosen/kvjson/internal/config"
	"github.com/zjrosen/kvjson/internal/keys"
	"github.com/zjrosen/kvjson/internal/log"
	"github.com/zjrosen/kvjson/internal/output"
	"github.com/zjrosen/kvjson/internal/ui/frame"
	"github.com/zjrosen/kvjson/internal/ui/styles"
)

func init() {
	// The screen is drawn on stderr so stdout stays clean for the result.
	// Detect colors from stderr, and query the background before Bubble Tea
	// starts reading input so the OSC 11 reply never lands in a draft.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))
	_ = lipgloss.HasDarkBackground()
}

// Config file locations, relative to the working directory and home.
const (
	localConfigPath = ".kvjson/config.yaml"
	userConfigDir   = ".config/kvjson"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "kvjson",
	Short: "Build a flat JSON object from the terminal",
	Long: `kvjson opens a full-screen editor for entering key-value pairs.

Press e to add a pair, tab to switch between key and value, enter to move on
or commit, esc to cancel. Press q to quit; answering y prints the pairs as a
single JSON object on stdout.

Examples:
  kvjson > data.json
  kvjson --format yaml`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .kvjson/config.yaml or ~/.config/kvjson/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log (path from KVJSON_LOG, default debug.log)")
	rootCmd.Flags().StringP("format", "f", "",
		"output format ("+output.FormatNames()+")")

	_ = viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))
}

func initConfig() {
	cfg, configErr = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig resolves the config file and decodes it over the defaults.
// A missing file is not an error unless it was named explicitly.
func loadConfig(v *viper.Viper, explicitPath string) (config.Config, error) {
	defaults := config.Defaults()
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("ui.title", defaults.UI.Title)
	v.SetDefault("ui.key_width", defaults.UI.KeyWidth)
	v.SetDefault("ui.show_count", defaults.UI.ShowCount)
	v.SetDefault("keys.new_pair", defaults.Keys.NewPair)
	v.SetDefault("keys.quit", defaults.Keys.Quit)

	// Config lookup order:
	// 1. --config flag
	// 2. .kvjson/config.yaml (current directory)
	// 3. ~/.config/kvjson/config.yaml (user config)
	switch {
	case explicitPath != "":
		v.SetConfigFile(explicitPath)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, userConfigDir))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("reading config: %w", err)
		}
	}

	out := defaults
	if err := v.Unmarshal(&out); err != nil {
		return defaults, fmt.Errorf("decoding config: %w", err)
	}
	return out, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// initLogging enables the file logger when --debug or KVJSON_DEBUG is set.
// The returned cleanup is always safe to call.
func initLogging() (func(), error) {
	if os.Getenv("KVJSON_DEBUG") == "" && !debugFlag {
		return func() {}, nil
	}

	logPath := os.Getenv("KVJSON_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.InitWithTeaLog(logPath, "kvjson")
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	if name := os.Getenv("KVJSON_LOG_LEVEL"); name != "" {
		if level, err := log.ParseLevel(name); err != nil {
			log.Warn(log.CatConfig, "Ignoring KVJSON_LOG_LEVEL", "value", name)
		} else {
			log.SetMinLevel(level)
		}
	}
	log.Info(log.CatSession, "kvjson starting",
		"session", uuid.New().String(),
		"version", version,
		"config", viper.ConfigFileUsed(),
		"logPath", logPath)
	return cleanup, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	cleanup, err := initLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	if configErr != nil {
		log.ErrorErr(log.CatConfig, "Failed to load config", configErr)
		return configErr
	}
	if err := config.Validate(cfg); err != nil {
		log.ErrorErr(log.CatConfig, "Invalid config", err)
		return fmt.Errorf("invalid configuration: %w", err)
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	keys.ApplyConfig(cfg.Keys.NewPair, cfg.Keys.Quit)
	styles.ApplyTheme(cfg.Theme.Accent, cfg.Theme.Muted, cfg.Theme.Error, cfg.Theme.Success)

	model := app.New(frame.Options{
		Title:     cfg.UI.Title,
		KeyWidth:  cfg.UI.KeyWidth,
		ShowCount: cfg.UI.ShowCount,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := p.Run()
	if err != nil {
		log.ErrorErr(log.CatSession, "Program failed", err)
		return fmt.Errorf("running program: %w", err)
	}

	m, ok := final.(app.Model)
	if !ok {
		log.Error(log.CatSession, "Unexpected final model", "type", fmt.Sprintf("%T", final))
		return fmt.Errorf("running program: unexpected final model %T", final)
	}
	return emit(cmd.OutOrStdout(), m, format)
}

// emit writes the committed pairs to w when the session ended with a
// request to print. Nothing is written otherwise.
func emit(w io.Writer, m app.Model, format output.Format) error {
	shouldPrint, done := m.Result()
	if !done || !shouldPrint {
		log.Info(log.CatOutput, "Buffer discarded", "done", done)
		return nil
	}

	pairs := m.Pairs()
	if err := output.Write(w, pairs, format); err != nil {
		log.ErrorErr(log.CatOutput, "Failed to write buffer", err, "format", format)
		return err
	}
	log.Info(log.CatOutput, "Buffer written", "format", format, "entries", len(pairs))
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
