package actions

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// IsFolder reports whether a configured path denotes a folder, using the
// trailing-separator convention from the block file.
func IsFolder(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`)
}

// ListAllowed returns the files directly inside dir whose extension is in
// the allow-list. Subdirectories are not descended into.
func ListAllowed(dir string, exts map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read folder %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if exts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// PickRandom selects one allowed file from dir uniformly at random.
func PickRandom(dir string, exts map[string]bool) (string, error) {
	files, err := ListAllowed(dir, exts)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no usable files in %s", dir)
	}
	return files[rand.IntN(len(files))], nil
}

// resolveMedia turns a configured wallpaper/music path into a concrete
// file: folder paths get a random allowed pick, plain paths are validated
// against the allow-list and for existence.
func resolveMedia(path string, exts map[string]bool) (string, error) {
	if IsFolder(path) {
		return PickRandom(strings.TrimRight(path, `/\`), exts)
	}
	if !exts[strings.ToLower(filepath.Ext(path))] {
		return "", fmt.Errorf("unsupported file format: %s", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("file not usable: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory (add a trailing slash for random pick)", abs)
	}
	return abs, nil
}
