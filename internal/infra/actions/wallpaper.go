package actions

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var wallpaperExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".bmp": true,
	".gif": true, ".tiff": true, ".webp": true,
}

// Wallpaper applies desktop wallpaper changes.
type Wallpaper struct {
	log *logrus.Entry
}

func NewWallpaper(log *logrus.Entry) *Wallpaper {
	return &Wallpaper{log: log}
}

// Apply sets the wallpaper from a file or, for folder paths, a random
// allowed image inside it.
func (w *Wallpaper) Apply(path string) error {
	target, err := resolveMedia(path, wallpaperExts)
	if err != nil {
		return err
	}
	if err := setWallpaper(target); err != nil {
		return fmt.Errorf("failed to set wallpaper %s: %w", target, err)
	}
	w.log.WithField("wallpaper", target).Info("Wallpaper applied")
	return nil
}
