package channels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrewkoo/veesee/internal/models"
)

type channelFile struct {
	Channels []struct {
		Number      string `yaml:"number"`
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		HasPlayback bool   `yaml:"has_playback"`
	} `yaml:"channels"`
	Aliases map[string][]string `yaml:"aliases"`
}

// Load builds a directory from a YAML mapping file, replacing the
// built-in channel table. Used to adapt the tool to a different channel
// lineup without a rebuild.
func Load(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading channel map: %w", err)
	}

	var f channelFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing channel map %s: %w", path, err)
	}
	if len(f.Channels) == 0 {
		return nil, fmt.Errorf("channel map %s defines no channels", path)
	}

	table := make([]models.Channel, 0, len(f.Channels))
	for _, c := range f.Channels {
		if c.Number == "" || c.Name == "" {
			return nil, fmt.Errorf("channel map %s: every channel needs a number and a name", path)
		}
		table = append(table, models.Channel{
			Number:      c.Number,
			Name:        c.Name,
			Category:    c.Category,
			HasPlayback: c.HasPlayback,
		})
	}
	return NewDirectory(table, f.Aliases), nil
}
