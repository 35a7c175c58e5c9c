package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
)

// EnvPrefix prefixes environment overrides, e.g. APPSHELL_UI_FRAME_INTERVAL
const EnvPrefix = "APPSHELL"

// Startup holds process configuration read once before the window opens.
type Startup struct {
	App    AppConfig
	Files  FilesConfig
	Layout LayoutConfig
	UI     UIConfig
}

// AppConfig identifies the application
type AppConfig struct {
	ID       string
	StateKey string `mapstructure:"state_key"`
}

// FilesConfig configures file acquisition
type FilesConfig struct {
	Picker     model.PickerKind
	Extensions []string
}

// LayoutConfig configures panel layout reconciliation
type LayoutConfig struct {
	Strategy panel.Strategy
}

// UIConfig holds presentation settings
type UIConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	Width         float32
	Height        float32
	Language      string
}

// Load reads appshell.toml from the user config dir (or APPSHELL_CONFIG) and
// applies APPSHELL_ environment overrides. A missing file is not an error; on
// any other error the defaults are returned along with it.
func Load(defaultID string) (Startup, error) {
	v := newViper(defaultID)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			s := Startup{}
			s.normalize(defaultID)
			return s, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v, defaultID)
}

// Watch calls onChange with the reloaded configuration every time the config
// file is written. It fails when there is no config file to watch.
// onChange runs on the watcher goroutine.
func Watch(defaultID string, onChange func(Startup)) error {
	v := newViper(defaultID)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		s, err := decode(v, defaultID)
		if err != nil {
			log.Printf("config: reload %s: %v", e.Name, err)
			return
		}
		log.Printf("config: reloaded %s", e.Name)
		onChange(s)
	})
	v.WatchConfig()
	return nil
}

func newViper(defaultID string) *viper.Viper {
	v := viper.New()

	v.SetDefault("app.id", defaultID)
	v.SetDefault("app.state_key", KeyAppState)
	v.SetDefault("files.picker", string(model.PickerNative))
	v.SetDefault("files.extensions", []string{})
	v.SetDefault("layout.strategy", string(panel.DefaultStrategy))
	v.SetDefault("ui.frame_interval", "100ms")
	v.SetDefault("ui.width", 400)
	v.SetDefault("ui.height", 300)
	v.SetDefault("ui.language", "system")

	v.SetConfigType("toml")
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "appshell"))
		}
		v.SetConfigName("appshell")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper, defaultID string) (Startup, error) {
	var s Startup
	if err := v.Unmarshal(&s); err != nil {
		s = Startup{}
		s.normalize(defaultID)
		return s, fmt.Errorf("unmarshal config: %w", err)
	}
	s.normalize(defaultID)
	return s, nil
}

func (s *Startup) normalize(defaultID string) {
	if s.App.ID == "" {
		s.App.ID = defaultID
	}
	if s.App.StateKey == "" {
		s.App.StateKey = KeyAppState
	}
	switch s.Files.Picker {
	case model.PickerNative, model.PickerFyne:
	default:
		s.Files.Picker = model.PickerNative
	}
	switch s.Layout.Strategy {
	case panel.ReconcileByCount, panel.ReconcileByName:
	default:
		s.Layout.Strategy = panel.DefaultStrategy
	}
	if s.UI.FrameInterval <= 0 {
		s.UI.FrameInterval = 100 * time.Millisecond
	}
	if s.UI.Width <= 0 {
		s.UI.Width = 400
	}
	if s.UI.Height <= 0 {
		s.UI.Height = 300
	}
	if s.UI.Language == "" {
		s.UI.Language = "system"
	}
}
