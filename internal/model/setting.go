package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SettingKind discriminates SelectedSetting.
type SettingKind string

const (
	SettingGeneral     SettingKind = "general"
	SettingPanelLayout SettingKind = "panel_layout"
	SettingNamed       SettingKind = "named"
)

// SelectedSetting is the cursor of the settings navigation list.
// Name is only meaningful for SettingNamed.
type SelectedSetting struct {
	Kind SettingKind `json:"kind"`
	Name string      `json:"name,omitempty"`
}

// General selects the process-wide settings page.
func General() SelectedSetting {
	return SelectedSetting{Kind: SettingGeneral}
}

// PanelLayout selects the placement editor.
func PanelLayout() SelectedSetting {
	return SelectedSetting{Kind: SettingPanelLayout}
}

// Named selects the settings fragment of one panel.
func Named(panelName string) SelectedSetting {
	return SelectedSetting{Kind: SettingNamed, Name: panelName}
}

// IsZero reports an unset cursor; callers treat it as General.
func (s SelectedSetting) IsZero() bool {
	return s.Kind == ""
}

// String returns a readable form used in logs
func (s SelectedSetting) String() string {
	if s.Kind == SettingNamed {
		return fmt.Sprintf("%s(%s)", s.Kind, s.Name)
	}
	if s.IsZero() {
		return string(SettingGeneral)
	}
	return string(s.Kind)
}

// UnmarshalJSON accepts unknown kinds by falling back to General so a state
// file written by another version still loads.
func (s *SelectedSetting) UnmarshalJSON(data []byte) error {
	type raw SelectedSetting
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	kind := SettingKind(strings.TrimSpace(string(r.Kind)))
	switch kind {
	case SettingGeneral, SettingPanelLayout:
		*s = SelectedSetting{Kind: kind}
	case SettingNamed:
		if r.Name == "" {
			*s = General()
			return nil
		}
		*s = SelectedSetting{Kind: kind, Name: r.Name}
	default:
		*s = General()
	}
	return nil
}
