package actions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func populate(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestIsFolder(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/pics/morning/", true},
		{`C:\pics\morning\`, true},
		{"/pics/morning.jpg", false},
		{"relative/file.png", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsFolder(tc.path); got != tc.want {
			t.Errorf("IsFolder(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestListAllowed_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.jpg", "b.PNG", "c.txt", "d.mp3", "noext")
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ListAllowed(dir, wallpaperExts)
	if err != nil {
		t.Fatalf("ListAllowed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f))
		if !wallpaperExts[ext] {
			t.Errorf("ListAllowed returned file outside allow-list: %s", f)
		}
	}
}

func TestPickRandom_OnlyAllowed(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.mp3", "b.wav", "readme.md", "c.exe")

	// Repeated picks must never escape the allow-list.
	for i := 0; i < 50; i++ {
		f, err := PickRandom(dir, audioExts)
		if err != nil {
			t.Fatalf("PickRandom: %v", err)
		}
		if !audioExts[strings.ToLower(filepath.Ext(f))] {
			t.Fatalf("picked file outside allow-list: %s", f)
		}
	}
}

func TestPickRandom_Empty(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "readme.md")
	if _, err := PickRandom(dir, audioExts); err == nil {
		t.Fatal("expected error when no allowed files exist")
	}
	if _, err := PickRandom(filepath.Join(dir, "missing"), audioExts); err == nil {
		t.Fatal("expected error for missing folder")
	}
}

func TestResolveMedia(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.jpg")

	// Folder path picks from inside.
	got, err := resolveMedia(dir+string(os.PathSeparator), wallpaperExts)
	if err != nil {
		t.Fatalf("resolveMedia folder: %v", err)
	}
	if filepath.Base(got) != "a.jpg" {
		t.Errorf("resolved %s", got)
	}

	// Plain file path validates extension and existence.
	if _, err := resolveMedia(filepath.Join(dir, "a.jpg"), wallpaperExts); err != nil {
		t.Errorf("resolveMedia file: %v", err)
	}
	if _, err := resolveMedia(filepath.Join(dir, "a.txt"), wallpaperExts); err == nil {
		t.Error("expected error for disallowed extension")
	}
	if _, err := resolveMedia(filepath.Join(dir, "gone.jpg"), wallpaperExts); err == nil {
		t.Error("expected error for missing file")
	}
	// Directory without trailing separator is rejected, not picked from.
	if _, err := resolveMedia(dir, wallpaperExts); err == nil {
		t.Error("expected error for bare directory path")
	}
}
