package config

import (
	"fmt"
	"os"
	"strings"

	"contextclock/internal/domain/schedule"

	"github.com/spf13/viper"
)

// blockSpec mirrors one entry of the "blocks" list in the YAML file.
type blockSpec struct {
	Name      string   `mapstructure:"name"`
	Start     string   `mapstructure:"start"`
	End       string   `mapstructure:"end"`
	Wallpaper string   `mapstructure:"wallpaper"`
	Apps      []string `mapstructure:"apps"`
	Websites  []string `mapstructure:"websites"`
	Music     string   `mapstructure:"music"`
}

// LoadBlocks reads the time block file and returns the ordered block list.
// Document order is preserved; it decides overlap resolution.
func LoadBlocks(path string) (schedule.List, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read block file %s: %w", path, err)
	}

	var specs []blockSpec
	if err := v.UnmarshalKey("blocks", &specs); err != nil {
		return nil, fmt.Errorf("invalid block file %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("block file %s defines no blocks", path)
	}

	blocks := make(schedule.List, 0, len(specs))
	for i, spec := range specs {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return nil, fmt.Errorf("block #%d has no name", i+1)
		}
		if _, exists := blocks.ByName(name); exists {
			return nil, fmt.Errorf("duplicate block name %q", name)
		}

		if spec.Start == "" || spec.End == "" {
			return nil, fmt.Errorf("block %q is missing required field start or end", name)
		}
		start, err := schedule.ParseClock(spec.Start)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", name, err)
		}
		end, err := schedule.ParseClock(spec.End)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", name, err)
		}

		blocks = append(blocks, schedule.Block{
			Name:  name,
			Start: start,
			End:   end,
			Actions: schedule.ActionSet{
				Wallpaper: spec.Wallpaper,
				Apps:      spec.Apps,
				Websites:  spec.Websites,
				Music:     spec.Music,
			},
		})
	}
	return blocks, nil
}

const defaultBlocksFile = `# Context Clock time blocks.
#
# Blocks are matched top to bottom; the first block containing the current
# time wins. Intervals may wrap past midnight (start > end). The start is
# inclusive, the end exclusive.
#
# wallpaper and music accept a single file, or a folder (trailing slash)
# from which a random file is picked on each activation.
blocks:
  - name: morning
    start: "06:00"
    end: "12:00"
    wallpaper: ""
    apps: []
    websites: []
    music: ""
  - name: afternoon
    start: "12:00"
    end: "18:00"
  - name: evening
    start: "18:00"
    end: "22:00"
  - name: night
    start: "22:00"
    end: "06:00"
`

// EnsureBlocksFile creates a commented starter block file if none exists.
func EnsureBlocksFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(path, []byte(defaultBlocksFile), 0o644); err != nil {
		return fmt.Errorf("failed to create default block file %s: %w", path, err)
	}
	return nil
}
