package model

import (
	"encoding/json"
	"testing"
)

func TestSelectedSetting_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected SelectedSetting
	}{
		{`{"kind":"general"}`, General()},
		{`{"kind":"panel_layout"}`, PanelLayout()},
		{`{"kind":"named","name":"Graph"}`, Named("Graph")},
		{`{"kind":"named"}`, General()},
		{`{"kind":" panel_layout "}`, PanelLayout()},
		{`{"kind":" named ","name":"Graph"}`, Named("Graph")},
		{`{"kind":"String","name":"Graph"}`, General()},
		{`{}`, General()},
	}

	for _, test := range tests {
		var got SelectedSetting
		if err := json.Unmarshal([]byte(test.input), &got); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", test.input, err)
		}
		if got != test.expected {
			t.Errorf("Unmarshal(%s) = %+v, expected %+v", test.input, got, test.expected)
		}
	}
}

func TestSelectedSetting_String(t *testing.T) {
	tests := []struct {
		setting  SelectedSetting
		expected string
	}{
		{General(), "general"},
		{SelectedSetting{}, "general"},
		{PanelLayout(), "panel_layout"},
		{Named("Log"), "named(Log)"},
	}

	for _, test := range tests {
		if result := test.setting.String(); result != test.expected {
			t.Errorf("SelectedSetting.String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestFile_GetDisplayName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/home/user/data.csv", "data.csv"},
		{`C:\Users\me\image.png`, "image.png"},
		{"report.pdf", "report.pdf"},
		{"", "untitled"},
	}

	for _, test := range tests {
		f := &File{Path: test.path}
		if result := f.GetDisplayName(); result != test.expected {
			t.Errorf("GetDisplayName() with Path=%q = %q, expected %q", test.path, result, test.expected)
		}
	}
}
