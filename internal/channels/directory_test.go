package channels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewkoo/veesee/internal/models"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	d := Default()

	lower := d.Lookup("nbc")
	upper := d.Lookup("NBC")

	if len(lower) == 0 || len(upper) == 0 {
		t.Fatalf("expected channels for both cases, got %d and %d", len(lower), len(upper))
	}
	if len(lower) != len(upper) {
		t.Fatalf("case changed the result: %v vs %v", lower, upper)
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Fatalf("case changed the result at %d: %+v vs %+v", i, lower[i], upper[i])
		}
	}
	if lower[0].Number != "174" {
		t.Fatalf("expected NBC to map to channel 174, got %s", lower[0].Number)
	}
}

func TestLookupUnknownBroadcasterIsEmptyNotError(t *testing.T) {
	d := Default()
	if got := d.Lookup("Completely Unknown TV"); len(got) != 0 {
		t.Fatalf("expected empty set for unknown broadcaster, got %v", got)
	}
	if got := d.Lookup(""); len(got) != 0 {
		t.Fatalf("expected empty set for empty name, got %v", got)
	}
}

func TestLookupMatchesSubstrings(t *testing.T) {
	d := Default()

	got := d.Lookup("Sky Sports Premier League HD")
	if len(got) == 0 {
		t.Fatalf("expected a match for decorated broadcaster name")
	}
	if got[0].Number != "870" {
		t.Fatalf("expected channel 870 first, got %s", got[0].Number)
	}
}

func TestLookupUnionsMultipleAliasHits(t *testing.T) {
	d := Default()

	// Matches both the specific pattern and the generic "Sky Sports".
	got := d.Lookup("Sky Sports Premier League")
	seen := make(map[string]bool)
	for _, ch := range got {
		if seen[ch.Number] {
			t.Fatalf("duplicate channel %s in %v", ch.Number, got)
		}
		seen[ch.Number] = true
	}
	if !seen["870"] {
		t.Fatalf("expected 870 in %v", got)
	}
}

func TestChannelsSortedByNumber(t *testing.T) {
	d := Default()
	chs := d.Channels()
	if len(chs) == 0 {
		t.Fatal("expected a non-empty channel table")
	}
	if chs[0].Number != "174" {
		t.Fatalf("expected 174 first, got %s", chs[0].Number)
	}
}

func TestLoadChannelMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.yaml")
	data := `channels:
  - number: "10"
    name: "Test Sports"
    category: "Sports"
    has_playback: true
aliases:
  "Test TV":
    - "Test Sports"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := d.Lookup("test tv east")
	if len(got) != 1 || got[0] != (models.Channel{Number: "10", Name: "Test Sports", Category: "Sports", HasPlayback: true}) {
		t.Fatalf("unexpected lookup result: %+v", got)
	}
}

func TestLoadRejectsEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.yaml")
	if err := os.WriteFile(path, []byte("aliases: {}\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a map with no channels")
	}
}
