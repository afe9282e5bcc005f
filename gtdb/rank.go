package gtdb

// A Rank is one of the seven standard taxonomic ranks used by the GTDB,
// ordered from domain (highest) to species (lowest).
type Rank int

const (
	Domain Rank = iota
	Phylum
	Class
	Order
	Family
	Genus
	Species
)

// Ranks lists all seven ranks from highest to lowest.
var Ranks = [7]Rank{Domain, Phylum, Class, Order, Family, Genus, Species}

// Prefix returns the single letter prefix the GTDB uses for taxa of this
// rank (e.g. "d" for domain, as in "d__Bacteria").
func (r Rank) Prefix() string {
	switch r {
	case Domain:
		return "d"
	case Phylum:
		return "p"
	case Class:
		return "c"
	case Order:
		return "o"
	case Family:
		return "f"
	case Genus:
		return "g"
	case Species:
		return "s"
	}
	panic("unreachable")
}

func (r Rank) String() string {
	switch r {
	case Domain:
		return "domain"
	case Phylum:
		return "phylum"
	case Class:
		return "class"
	case Order:
		return "order"
	case Family:
		return "family"
	case Genus:
		return "genus"
	case Species:
		return "species"
	}
	panic("unreachable")
}

// Lower returns the next rank below this one; false for species.
func (r Rank) Lower() (Rank, bool) {
	if r == Species {
		return 0, false
	}
	return r + 1, true
}

// Higher returns the next rank above this one; false for domain.
func (r Rank) Higher() (Rank, bool) {
	if r == Domain {
		return 0, false
	}
	return r - 1, true
}

// LowerRanks returns the ranks below this one, highest first, excluding
// the rank itself.
func (r Rank) LowerRanks() []Rank {
	return Ranks[r+1:]
}

// LowerRanksInclusive returns this rank and the ranks below it, highest
// first.
func (r Rank) LowerRanksInclusive() []Rank {
	return Ranks[r:]
}

// HigherRanks returns the ranks above this one, lowest first, excluding
// the rank itself.
func (r Rank) HigherRanks() []Rank {
	out := make([]Rank, 0, int(r))
	for i := int(r) - 1; i >= 0; i-- {
		out = append(out, Ranks[i])
	}
	return out
}

// HigherRanksInclusive returns this rank and the ranks above it, lowest
// first.
func (r Rank) HigherRanksInclusive() []Rank {
	out := make([]Rank, 0, int(r)+1)
	for i := int(r); i >= 0; i-- {
		out = append(out, Ranks[i])
	}
	return out
}
