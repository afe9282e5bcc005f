package pfam

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
)

// A Hit is one line of a PyPfam output file.
type Hit struct {
	// SeqID is the identifier of the target sequence.
	SeqID string
	// AlignStart and AlignEnd are the hit positions in the target.
	AlignStart int
	AlignEnd   int
	// EnvelopeStart and EnvelopeEnd bound the surrounding envelope.
	EnvelopeStart int
	EnvelopeEnd   int
	// HMMAcc is the accession of the HMM (e.g. PF02896.19).
	HMMAcc string
	// HMMName is the name of the HMM (e.g. PEP-utilizers_C).
	HMMName string
	// HMMType is the type of the HMM (e.g. Domain).
	HMMType string
	// HMMStart and HMMEnd are the hit positions within the HMM, and
	// HMMLength the HMM's total length.
	HMMStart  int
	HMMEnd    int
	HMMLength int
	// BitScore is the score (in bits) for this hit.
	BitScore float64
	// EValue is the expectation value of the target.
	EValue float64
	// Significance is true when the bit score meets the family's curated
	// gathering threshold. It is nil for Pfam-B hits, which the file
	// records as "NA" since Pfam-B families have no curated thresholds.
	Significance *bool
	// Clan records overlapping hits within clan member families.
	Clan string
}

var reHit = regexp.MustCompile(
	`^(\S+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)` +
		`\s+(\S+)\s+(\S+)\s+(\S+)` +
		`\s+(\d+)\s+(\d+)\s+(\d+)` +
		`\s+([+-.e\d]+)\s+([+-.e\d]+)\s+([+-.e\d]+|NA)\s+(\S+)\s*$`)

// ParseHit parses a single PyPfam output line.
func ParseHit(line string) (Hit, error) {
	m := reHit.FindStringSubmatch(line)
	if m == nil {
		return Hit{}, fmt.Errorf("pfam: error parsing: %s", line)
	}

	hit := Hit{
		SeqID:   m[1],
		HMMAcc:  m[6],
		HMMName: m[7],
		HMMType: m[8],
		Clan:    m[15],
	}
	if m[14] != "NA" {
		sig := m[14] == "1"
		hit.Significance = &sig
	}

	ints := []struct {
		dst *int
		src string
	}{
		{&hit.AlignStart, m[2]},
		{&hit.AlignEnd, m[3]},
		{&hit.EnvelopeStart, m[4]},
		{&hit.EnvelopeEnd, m[5]},
		{&hit.HMMStart, m[9]},
		{&hit.HMMEnd, m[10]},
		{&hit.HMMLength, m[11]},
	}
	for _, n := range ints {
		v, err := strconv.Atoi(n.src)
		if err != nil {
			return Hit{}, err
		}
		*n.dst = v
	}

	var err error
	if hit.BitScore, err = strconv.ParseFloat(m[12], 64); err != nil {
		return Hit{}, err
	}
	if hit.EValue, err = strconv.ParseFloat(m[13], 64); err != nil {
		return Hit{}, err
	}
	return hit, nil
}

// Read parses all hits from the given reader, in file order.
func Read(r io.Reader) ([]Hit, error) {
	hits := make([]Hit, 0, 10)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		hit, err := ParseHit(line)
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}

// ReadPath parses all hits from a file.
func ReadPath(path string) ([]Hit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// ReadPathGz parses all hits from a gzip compressed file.
func ReadPathGz(path string) ([]Hit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	gz, err := pgzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return Read(gz)
}
