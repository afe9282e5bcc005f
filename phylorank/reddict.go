package phylorank

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/aaronmussig/prole/gtdb"
)

// reDict matches the JSON-shaped dictionary PhyloRank writes, e.g.
// {"phylum": 0.21, "class": 0.35, ...}. The values always appear in rank
// order, so positional capture groups suffice.
var reDict = regexp.MustCompile(
	`.phylum.:\s?([\d.]+).+.class.:\s?([\d.]+).+.order.:\s?([\d.]+)` +
		`.+.family.:\s?([\d.]+).+.genus.:\s?([\d.]+).+`)

// A RedDict holds the median RED value for each rank between phylum and
// genus. Domain and species have no meaningful RED medians.
type RedDict struct {
	Phylum RED
	Class  RED
	Order  RED
	Family RED
	Genus  RED
}

// Get returns the RED value for the given rank; false for domain and
// species.
func (d *RedDict) Get(rank gtdb.Rank) (RED, bool) {
	switch rank {
	case gtdb.Phylum:
		return d.Phylum, true
	case gtdb.Class:
		return d.Class, true
	case gtdb.Order:
		return d.Order, true
	case gtdb.Family:
		return d.Family, true
	case gtdb.Genus:
		return d.Genus, true
	}
	return 0, false
}

// Read parses a RED dictionary from the given reader.
func Read(r io.Reader) (*RedDict, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m := reDict.FindSubmatch(contents)
	if m == nil {
		return nil, fmt.Errorf("phylorank: no RED values found")
	}

	values := make([]RED, 5)
	for i := range values {
		v, err := strconv.ParseFloat(string(m[i+1]), 64)
		if err != nil {
			return nil, err
		}
		values[i] = RED(v)
	}
	return &RedDict{
		Phylum: values[0],
		Class:  values[1],
		Order:  values[2],
		Family: values[3],
		Genus:  values[4],
	}, nil
}

// ReadPath parses a RED dictionary from a file.
func ReadPath(path string) (*RedDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
