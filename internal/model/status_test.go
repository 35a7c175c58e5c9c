package model

import "testing"

func TestPlacement_IsVisible(t *testing.T) {
	tests := []struct {
		placement Placement
		expected  bool
	}{
		{PlacementWindow, true},
		{PlacementSidebar, true},
		{PlacementHidden, false},
		{Placement("floating"), false},
	}

	for _, test := range tests {
		result := test.placement.IsVisible()
		if result != test.expected {
			t.Errorf("Placement(%s).IsVisible() = %v, expected %v", test.placement, result, test.expected)
		}
	}
}

func TestPlacement_IsValid(t *testing.T) {
	tests := []struct {
		placement Placement
		expected  bool
	}{
		{PlacementWindow, true},
		{PlacementSidebar, true},
		{PlacementHidden, true},
		{Placement(""), false},
		{Placement("AsWindows"), false},
	}

	for _, test := range tests {
		result := test.placement.IsValid()
		if result != test.expected {
			t.Errorf("Placement(%q).IsValid() = %v, expected %v", test.placement, result, test.expected)
		}
	}
}

func TestPlacement_Label(t *testing.T) {
	if PlacementHidden.Label() != "None" {
		t.Errorf("PlacementHidden.Label() = %s, expected None", PlacementHidden.Label())
	}
	if Placement("x").Label() != "Unknown" {
		t.Errorf("unknown placement label = %s, expected Unknown", Placement("x").Label())
	}
}

func TestDefaultPlacement(t *testing.T) {
	if DefaultPlacement != PlacementWindow {
		t.Errorf("DefaultPlacement = %s, expected %s", DefaultPlacement, PlacementWindow)
	}
}

func TestAcquisitionState_IsFinished(t *testing.T) {
	tests := []struct {
		state    AcquisitionState
		expected bool
	}{
		{AcquisitionNotSelected, true},
		{AcquisitionInProgress, false},
		{AcquisitionNoRequest, false},
		{AcquisitionReady, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("AcquisitionState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestAcquisitionState_String(t *testing.T) {
	state := AcquisitionNoRequest
	expected := "NoActiveRequest"
	result := state.String()

	if result != expected {
		t.Errorf("AcquisitionState.String() = %s, expected %s", result, expected)
	}
}
