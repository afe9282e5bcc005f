package genome

import "regexp"

var reCanonical = regexp.MustCompile(
	`^(?:(?:GB_)?GCA_|(?:RS_)?GCF_)(\d{9})\.\d$`)

// A GenomeID is a genome accession. No restriction is placed on its form;
// only Canonical inspects it.
type GenomeID string

// Canonical converts the accession to its database-agnostic canonical
// form, G followed by the nine accession digits. The second return value
// is false when the accession is not a versioned GenBank/RefSeq
// identifier.
func (id GenomeID) Canonical() (GenomeID, bool) {
	m := reCanonical.FindStringSubmatch(string(id))
	if m == nil {
		return "", false
	}
	return GenomeID("G" + m[1]), true
}
