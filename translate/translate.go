package translate

import "fmt"

// A Table identifies an NCBI translation table.
type Table int

// Table11 is the bacterial, archaeal and plant plastid code.
const Table11 Table = 11

var table11 = map[string]byte{
	"AAA": 'K', "AAC": 'N', "AAG": 'K', "AAT": 'N',
	"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
	"AGA": 'R', "AGC": 'S', "AGG": 'R', "AGT": 'S',
	"ATA": 'I', "ATC": 'I', "ATG": 'M', "ATT": 'I',
	"CAA": 'Q', "CAC": 'H', "CAG": 'Q', "CAT": 'H',
	"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
	"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
	"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
	"GAA": 'E', "GAC": 'D', "GAG": 'E', "GAT": 'D',
	"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
	"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
	"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
	"TAA": '-', "TAC": 'Y', "TAG": '-', "TAT": 'Y',
	"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
	"TGA": '-', "TGC": 'C', "TGG": 'W', "TGT": 'C',
	"TTA": 'L', "TTC": 'F', "TTG": 'L', "TTT": 'F',
}

// Codon translates a single codon. The second return value is false for
// codons not in the table (including any with ambiguity codes).
func (t Table) Codon(codon string) (byte, bool) {
	switch t {
	case Table11:
		aa, ok := table11[codon]
		return aa, ok
	}
	return 0, false
}

// Sequence translates a nucleotide sequence codon by codon. The sequence
// length must be a multiple of three and every codon must be present in
// the table.
func Sequence(dna string, t Table) (string, error) {
	if len(dna)%3 != 0 {
		return "", fmt.Errorf(
			"translate: sequence length %d is not a multiple of 3", len(dna))
	}
	prot := make([]byte, 0, len(dna)/3)
	for i := 0; i < len(dna); i += 3 {
		codon := dna[i : i+3]
		aa, ok := t.Codon(codon)
		if !ok {
			return "", fmt.Errorf("translate: unknown codon: %s", codon)
		}
		prot = append(prot, aa)
	}
	return string(prot), nil
}
