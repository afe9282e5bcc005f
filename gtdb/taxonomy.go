package gtdb

import (
	"fmt"
	"strings"
)

// A Taxon is a single prefixed taxon name, e.g. "d__Bacteria".
type Taxon string

// A Taxonomy holds one taxon for each of the seven ranks.
type Taxonomy struct {
	Domain  Taxon
	Phylum  Taxon
	Class   Taxon
	Order   Taxon
	Family  Taxon
	Genus   Taxon
	Species Taxon
}

// ParseTaxonomy parses a GTDB taxonomy string of exactly seven
// semicolon-separated taxa, e.g.
// "d__Bacteria;p__...;c__...;o__...;f__...;g__...;s__...".
// Whitespace around each taxon is trimmed.
func ParseTaxonomy(s string) (Taxonomy, error) {
	fields := strings.Split(s, ";")
	if len(fields) != 7 {
		return Taxonomy{}, fmt.Errorf(
			"gtdb: taxonomy string has %d fields, expected 7: %s", len(fields), s)
	}
	return Taxonomy{
		Domain:  Taxon(strings.TrimSpace(fields[0])),
		Phylum:  Taxon(strings.TrimSpace(fields[1])),
		Class:   Taxon(strings.TrimSpace(fields[2])),
		Order:   Taxon(strings.TrimSpace(fields[3])),
		Family:  Taxon(strings.TrimSpace(fields[4])),
		Genus:   Taxon(strings.TrimSpace(fields[5])),
		Species: Taxon(strings.TrimSpace(fields[6])),
	}, nil
}

// Get returns the taxon for the given rank.
func (t Taxonomy) Get(r Rank) Taxon {
	switch r {
	case Domain:
		return t.Domain
	case Phylum:
		return t.Phylum
	case Class:
		return t.Class
	case Order:
		return t.Order
	case Family:
		return t.Family
	case Genus:
		return t.Genus
	case Species:
		return t.Species
	}
	panic("unreachable")
}

// String reassembles the semicolon-separated taxonomy string.
func (t Taxonomy) String() string {
	taxa := make([]string, 0, len(Ranks))
	for _, r := range Ranks {
		taxa = append(taxa, string(t.Get(r)))
	}
	return strings.Join(taxa, ";")
}
