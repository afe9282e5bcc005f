package phylorank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaronmussig/prole/gtdb"
)

func TestGet(t *testing.T) {
	dict := &RedDict{
		Phylum: 0.21,
		Class:  0.35,
		Order:  0.51,
		Family: 0.70,
		Genus:  0.89,
	}
	wants := map[gtdb.Rank]RED{
		gtdb.Phylum: 0.21,
		gtdb.Class:  0.35,
		gtdb.Order:  0.51,
		gtdb.Family: 0.70,
		gtdb.Genus:  0.89,
	}
	for rank, want := range wants {
		if got, ok := dict.Get(rank); !ok || got != want {
			t.Fatalf("RED for %s is %v, expected %v", rank, got, want)
		}
	}
	if _, ok := dict.Get(gtdb.Domain); ok {
		t.Fatalf("Unexpected RED value for domain.")
	}
	if _, ok := dict.Get(gtdb.Species); ok {
		t.Fatalf("Unexpected RED value for species.")
	}
}

func TestRead(t *testing.T) {
	content := `{"phylum":0.21,"class":0.35,"order":0.51,"family":0.70,"genus":0.89}`
	dict, err := Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if dict.Phylum != 0.21 || dict.Class != 0.35 || dict.Order != 0.51 {
		t.Fatalf("Wrong RED values: %+v", dict)
	}
	if dict.Family != 0.70 || dict.Genus != 0.89 {
		t.Fatalf("Wrong RED values: %+v", dict)
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Read(strings.NewReader("{}")); err == nil {
		t.Fatalf("Expected an error for a dictionary with no values.")
	}
}

func TestReadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red_dictionary.json")
	content := `{"phylum": 0.21, "class": 0.35, "order": 0.51, "family": 0.70, "genus": 0.89}`
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	dict, err := ReadPath(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if dict.Genus != 0.89 {
		t.Fatalf("Wrong genus RED: %v", dict.Genus)
	}
}

func TestAbs(t *testing.T) {
	if got := (RED(0.3) - RED(0.5)).Abs(); got != RED(0.2) {
		t.Fatalf("Abs is %v, expected 0.2", got)
	}
}
