package config

import (
	"encoding/json"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
	"github.com/ytget/appshell/internal/settings"
)

func TestNewStore(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	if store.app != app {
		t.Error("Store app reference should match provided app")
	}
	if store.key != KeyAppState {
		t.Errorf("Expected key %s, got %s", KeyAppState, store.key)
	}

	if NewStoreWithKey(app, "").key != KeyAppState {
		t.Error("Empty key should fall back to the default key")
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store := NewStoreWithKey(test.NewApp(), "empty_state")
	if st := store.Load(); st != nil {
		t.Errorf("Expected nil state on first start, got %+v", st)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store := NewStoreWithKey(test.NewApp(), "roundtrip_state")

	s := settings.Default()
	s.Open = true
	s.ShowInspection = true
	s.Selected = model.Named("Graph")

	state := &PersistedState{
		App:      json.RawMessage(`{"counter":3}`),
		Settings: s,
		PanelLayout: panel.LayoutState{
			"Log":   {Placement: model.PlacementSidebar},
			"Graph": {Placement: model.PlacementHidden},
		},
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := store.Load()
	if loaded == nil {
		t.Fatal("Expected state after save, got nil")
	}
	if string(loaded.App) != `{"counter":3}` {
		t.Errorf("Expected app state to round trip, got %s", loaded.App)
	}
	if loaded.Settings != s {
		t.Errorf("Expected settings %+v, got %+v", s, loaded.Settings)
	}
	if loaded.PanelLayout["Log"].Placement != model.PlacementSidebar {
		t.Errorf("Expected Log in sidebar, got %s", loaded.PanelLayout["Log"].Placement)
	}
	if len(loaded.PanelLayout) != 2 {
		t.Errorf("Expected 2 layout entries, got %d", len(loaded.PanelLayout))
	}
}

func TestStore_DiscardsCorruptState(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString("corrupt_state", "{not json")

	store := NewStoreWithKey(app, "corrupt_state")
	if st := store.Load(); st != nil {
		t.Errorf("Expected corrupt state to be discarded, got %+v", st)
	}
}

func TestStore_NormalizesSettings(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString("old_state", `{"settings":{"open":false}}`)

	st := NewStoreWithKey(app, "old_state").Load()
	if st == nil {
		t.Fatal("Expected state, got nil")
	}
	if st.Settings.MinWidthSidebar != settings.DefaultMinWidthSidebar {
		t.Errorf("Expected sidebar width %v, got %v", settings.DefaultMinWidthSidebar, st.Settings.MinWidthSidebar)
	}
	if st.Settings.Selected != model.General() {
		t.Errorf("Expected General selection, got %s", st.Settings.Selected)
	}
	if st.PanelLayout != nil {
		t.Errorf("Expected no layout, got %v", st.PanelLayout)
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStoreWithKey(test.NewApp(), "cleared_state")
	if err := store.Save(&PersistedState{Settings: settings.Default()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	store.Clear()
	if st := store.Load(); st != nil {
		t.Errorf("Expected nil after Clear, got %+v", st)
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	// Test default value
	if mode := store.GetTheme(); mode != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, mode)
	}

	store.SetTheme(ThemeDark)
	if mode := store.GetTheme(); mode != ThemeDark {
		t.Errorf("Expected theme %s, got %s", ThemeDark, mode)
	}

	// Unknown values fall back to the default
	app.Preferences().SetString(KeyTheme, "sepia")
	if mode := store.GetTheme(); mode != DefaultTheme {
		t.Errorf("Expected fallback theme %s, got %s", DefaultTheme, mode)
	}
}

func TestGetThemeOptions(t *testing.T) {
	store := NewStore(test.NewApp())
	options := store.GetThemeOptions()
	expected := []ThemeMode{ThemeLight, ThemeDark, ThemeSystem}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d theme options, got %d", len(expected), len(options))
	}
	for i, mode := range expected {
		if options[i] != mode {
			t.Errorf("Theme option %d: expected %s, got %s", i, mode, options[i])
		}
	}
}
