package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sportui/internal/ui"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	KeyMap  KeyMap        `mapstructure:"keymap"`
	Colors  ThemeConfig   `mapstructure:"theme"`
	Account AccountConfig `mapstructure:"account"`
}

// UIConfig holds terminal settings.
type UIConfig struct {
	TickRate  time.Duration `mapstructure:"tick_rate"`
	AltScreen bool          `mapstructure:"alt_screen"`
	Mouse     bool          `mapstructure:"mouse"`
}

// KeyMap names the global keys. Values are key names as accepted by
// ui.ParseKey: a single character, or a name such as "enter" or "esc".
type KeyMap struct {
	Quit   string `mapstructure:"quit"`
	Accept string `mapstructure:"accept"`
	Reject string `mapstructure:"reject"`
}

// ThemeConfig overrides palette colors (lipgloss color strings).
type ThemeConfig struct {
	Accent    string `mapstructure:"accent"`
	Highlight string `mapstructure:"highlight"`
	Danger    string `mapstructure:"danger"`
	Muted     string `mapstructure:"muted"`
}

// AccountConfig selects the account shown on the account page.
type AccountConfig struct {
	ID uint64 `mapstructure:"id"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := ui.DefaultPalette()
	return Config{
		UI:     UIConfig{TickRate: 500 * time.Millisecond, AltScreen: true},
		KeyMap: KeyMap{Quit: "q", Accept: "enter", Reject: "esc"},
		Colors: ThemeConfig{
			Accent:    p.Accent,
			Highlight: p.Highlight,
			Danger:    p.Danger,
			Muted:     p.Muted,
		},
		Account: AccountConfig{ID: 1},
	}
}

// Path returns the config file location: SPORTUI_CONFIG, or
// ~/.config/sportui/config.toml.
func Path() string {
	if p := os.Getenv("SPORTUI_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "sportui", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SPORTUI_.
func Load() (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("ui.tick_rate", d.UI.TickRate)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("keymap.quit", d.KeyMap.Quit)
	v.SetDefault("keymap.accept", d.KeyMap.Accept)
	v.SetDefault("keymap.reject", d.KeyMap.Reject)
	v.SetDefault("theme.accent", d.Colors.Accent)
	v.SetDefault("theme.highlight", d.Colors.Highlight)
	v.SetDefault("theme.danger", d.Colors.Danger)
	v.SetDefault("theme.muted", d.Colors.Muted)
	v.SetDefault("account.id", d.Account.ID)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("SPORTUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file means defaults
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that every configured key name resolves.
func (c Config) Validate() error {
	for name, k := range map[string]string{
		"keymap.quit":   c.KeyMap.Quit,
		"keymap.accept": c.KeyMap.Accept,
		"keymap.reject": c.KeyMap.Reject,
	} {
		if _, _, ok := ui.ParseKey(k); !ok {
			return fmt.Errorf("%s: unknown key %q", name, k)
		}
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.tick_rate", cfg.UI.TickRate.String())
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("keymap.quit", cfg.KeyMap.Quit)
	v.Set("keymap.accept", cfg.KeyMap.Accept)
	v.Set("keymap.reject", cfg.KeyMap.Reject)
	v.Set("theme.accent", cfg.Colors.Accent)
	v.Set("theme.highlight", cfg.Colors.Highlight)
	v.Set("theme.danger", cfg.Colors.Danger)
	v.Set("theme.muted", cfg.Colors.Muted)
	v.Set("account.id", cfg.Account.ID)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Theme builds the UI theme from the configured colors.
func (c Config) Theme() *ui.Theme {
	p := ui.DefaultPalette()
	if c.Colors.Accent != "" {
		p.Accent = c.Colors.Accent
	}
	if c.Colors.Highlight != "" {
		p.Highlight = c.Colors.Highlight
	}
	if c.Colors.Danger != "" {
		p.Danger = c.Colors.Danger
	}
	if c.Colors.Muted != "" {
		p.Muted = c.Colors.Muted
	}
	return ui.NewTheme(p)
}
