// Package channels holds the fixed Heat app channel list and the
// broadcaster-to-channel directory built on top of it.
package channels

import (
	"sort"
	"strconv"
	"strings"

	"github.com/andrewkoo/veesee/internal/models"
)

// Directory maps broadcaster names to Heat channels. It is constructed
// once, never mutated afterward, and therefore safe for concurrent reads.
type Directory struct {
	channels map[string]models.Channel // keyed by channel name
	aliases  []alias
}

type alias struct {
	pattern  string // lowercased substring to match against broadcaster names
	channels []string
}

// NewDirectory builds a directory from a channel table and an alias
// table mapping broadcaster name patterns to channel names.
func NewDirectory(table []models.Channel, aliasMap map[string][]string) *Directory {
	d := &Directory{channels: make(map[string]models.Channel, len(table))}
	for _, ch := range table {
		d.channels[ch.Name] = ch
	}

	// Longer patterns first so "sky sports premier league" wins over
	// "sky sports" when both are present.
	patterns := make([]string, 0, len(aliasMap))
	for p := range aliasMap {
		patterns = append(patterns, p)
	}
	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i]) != len(patterns[j]) {
			return len(patterns[i]) > len(patterns[j])
		}
		return patterns[i] < patterns[j]
	})
	for _, p := range patterns {
		d.aliases = append(d.aliases, alias{pattern: strings.ToLower(p), channels: aliasMap[p]})
	}
	return d
}

// Default returns the directory built from the stock Heat channel list.
func Default() *Directory {
	return NewDirectory(heatChannels, networkAliases)
}

// Lookup returns the Heat channels for a broadcaster name. Matching is
// case-insensitive substring matching against the alias table. An empty
// result means "unknown broadcaster" and is not an error.
func (d *Directory) Lookup(broadcaster string) []models.Channel {
	name := strings.ToLower(strings.TrimSpace(broadcaster))
	if name == "" {
		return nil
	}

	var out []models.Channel
	seen := make(map[string]bool)
	for _, a := range d.aliases {
		if !strings.Contains(name, a.pattern) {
			continue
		}
		for _, chName := range a.channels {
			ch, ok := d.channels[chName]
			if !ok || seen[ch.Number] {
				continue
			}
			seen[ch.Number] = true
			out = append(out, ch)
		}
	}
	return out
}

// Channels returns the full channel table sorted by channel number.
func (d *Directory) Channels() []models.Channel {
	out := make([]models.Channel, 0, len(d.channels))
	for _, ch := range d.channels {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, _ := strconv.Atoi(out[i].Number)
		nj, _ := strconv.Atoi(out[j].Number)
		return ni < nj
	})
	return out
}
