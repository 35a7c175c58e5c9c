package config

import (
	"encoding/json"
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/panel"
	"github.com/ytget/appshell/internal/settings"
)

// ThemeMode is the light/dark preference
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyAppState = "app_state"
	KeyTheme    = "theme_preference"
)

// Default values
const (
	DefaultTheme = ThemeSystem
)

// PersistedState is written on shutdown and read on startup. App holds the
// host application's own serialized state.
type PersistedState struct {
	App         json.RawMessage   `json:"app,omitempty"`
	Settings    settings.Settings `json:"settings"`
	PanelLayout panel.LayoutState `json:"panel_layout,omitempty"`
}

// Store persists shell state in the Fyne app preferences
type Store struct {
	app fyne.App
	key string
}

// NewStore creates a store writing under KeyAppState
func NewStore(app fyne.App) *Store {
	return NewStoreWithKey(app, KeyAppState)
}

// NewStoreWithKey creates a store writing under a custom preference key
func NewStoreWithKey(app fyne.App, key string) *Store {
	if key == "" {
		key = KeyAppState
	}
	return &Store{app: app, key: key}
}

// Load returns the persisted state, or nil when there is none. A state that
// no longer decodes is discarded rather than rejected.
func (s *Store) Load() *PersistedState {
	raw := s.app.Preferences().String(s.key)
	if raw == "" {
		return nil
	}

	var st PersistedState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		log.Printf("config: discarding unreadable state %q: %v", s.key, err)
		return nil
	}
	st.Settings.Normalize()
	return &st
}

// Save writes state to the preferences
func (s *Store) Save(st *PersistedState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	s.app.Preferences().SetString(s.key, string(data))
	log.Printf("config: state saved (%d bytes)", len(data))
	return nil
}

// Clear removes the persisted state
func (s *Store) Clear() {
	s.app.Preferences().RemoveValue(s.key)
}

// GetTheme returns the configured theme preference
func (s *Store) GetTheme() ThemeMode {
	mode := ThemeMode(s.app.Preferences().String(KeyTheme))
	switch mode {
	case ThemeSystem, ThemeLight, ThemeDark:
		return mode
	default:
		s.SetTheme(DefaultTheme)
		return DefaultTheme
	}
}

// SetTheme sets the theme preference
func (s *Store) SetTheme(mode ThemeMode) {
	s.app.Preferences().SetString(KeyTheme, string(mode))
}

// GetThemeOptions returns available theme options with their labels
func (s *Store) GetThemeOptions() []ThemeMode {
	return []ThemeMode{ThemeLight, ThemeDark, ThemeSystem}
}

// Label returns the menu label of a theme mode
func (m ThemeMode) Label() string {
	switch m {
	case ThemeLight:
		return "☀ Light"
	case ThemeDark:
		return "🌙 Dark"
	default:
		return "💻 System"
	}
}
