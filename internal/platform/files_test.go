package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestTargetProbes(t *testing.T) {
	if IsWeb() == IsNative() {
		t.Errorf("IsWeb and IsNative must disagree, both are %v", IsWeb())
	}
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	if err := SaveFile([]byte("first version"), path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	// Saving again truncates the previous content
	if err := SaveFile([]byte("v2"), path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "v2" {
		t.Errorf("Expected %q, got %q", "v2", data)
	}
}

func TestSaveFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nested", "out.bin")

	if err := SaveFile([]byte("data"), path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("Expected %q, got %q", "data", data)
	}
}

func TestSaveFile_ParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
		t.Fatalf("write parent: %v", err)
	}

	err := SaveFile([]byte("data"), filepath.Join(parent, "sub", "out.bin"))
	if err == nil {
		t.Fatal("Expected error when the parent is a file, got nil")
	}
	if !strings.HasPrefix(err.Error(), "cannot create directory") {
		t.Errorf("Error message should start with 'cannot create directory', got: %v", err)
	}
}

func TestSaveDialogStart(t *testing.T) {
	fallback := filepath.Join("home", "Downloads")
	tests := []struct {
		current  string
		wantDir  string
		wantName string
	}{
		{"", fallback, DefaultFileName},
		{"image.png", fallback, "image.png"},
		{filepath.Join("data", "image.png"), "data", "image.png"},
		{filepath.Join("data", "nested") + string(filepath.Separator), filepath.Join("data", "nested"), DefaultFileName},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			dir, name := saveDialogStart(tt.current, fallback)
			if dir != tt.wantDir || name != tt.wantName {
				t.Errorf("saveDialogStart(%q) = (%q, %q), expected (%q, %q)",
					tt.current, dir, name, tt.wantDir, tt.wantName)
			}
		})
	}
}

func TestDefaultSaveDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	if got := defaultSaveDir(); got != "." {
		t.Errorf("Expected working dir without Downloads, got %q", got)
	}

	downloads := filepath.Join(home, "Downloads")
	if err := CreateDirectoryIfNotExists(downloads); err != nil {
		t.Fatalf("create Downloads: %v", err)
	}
	if got := defaultSaveDir(); got != downloads {
		t.Errorf("Expected %q, got %q", downloads, got)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("")
	if err == nil || err.Error() != "file path is empty" {
		t.Errorf("Expected 'file path is empty', got %v", err)
	}
}
