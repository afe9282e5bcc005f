package hmmsearch

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

// A Hit is one line of a --tblout file. The field meanings follow the
// HMMER user guide; the accession fields are empty when the file records
// them as "-".
type Hit struct {
	// TargetName is the name of the target sequence or profile.
	TargetName string
	// TargetAccession is the accession of the target, if any.
	TargetAccession string
	// QueryName is the name of the query sequence or profile.
	QueryName string
	// QueryAccession is the accession of the query, if any.
	QueryAccession string

	// FullSeqEValue, FullSeqScore and FullSeqBias describe the full
	// sequence: E-value, bit score, and the biased-composition (null2)
	// score correction.
	FullSeqEValue float64
	FullSeqScore  float64
	FullSeqBias   float64

	// BestDomEValue, BestDomScore and BestDomBias are the same three
	// statistics computed as if only the single best-scoring domain
	// envelope had been found.
	BestDomEValue float64
	BestDomScore  float64
	BestDomBias   float64

	// Exp is the expected number of domains from posterior decoding.
	Exp float64
	// Reg is the number of discrete regions defined.
	Reg int
	// Clu is the number of regions that appeared to be multidomain.
	Clu int
	// Ov is the number of envelopes that overlap other envelopes.
	Ov int
	// Env is the total number of envelopes defined.
	Env int
	// Dom is the number of domains defined.
	Dom int
	// Rep is the number of domains satisfying reporting thresholds.
	Rep int
	// Inc is the number of domains satisfying inclusion thresholds.
	Inc int

	// Description is the target's free-text description line.
	Description string
}

var reHit = regexp.MustCompile(
	`^(\S+)\s+(\S+)\s+(\S+)\s+(\S+)` +
		`\s+([\d.e+-]+)\s+([\d.e+-]+)\s+([\d.e+-]+)` +
		`\s+([\d.e+-]+)\s+([\d.e+-]+)\s+([\d.e+-]+)` +
		`\s+([\d.e+-]+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)` +
		`\s+(.+)$`)

// ParseHit parses a single --tblout line.
func ParseHit(line string) (Hit, error) {
	m := reHit.FindStringSubmatch(line)
	if m == nil {
		return Hit{}, fmt.Errorf("hmmsearch: error parsing: %s", line)
	}

	hit := Hit{
		TargetName:  m[1],
		QueryName:   m[3],
		Description: m[19],
	}
	if m[2] != "-" {
		hit.TargetAccession = m[2]
	}
	if m[4] != "-" {
		hit.QueryAccession = m[4]
	}

	floats := []struct {
		dst *float64
		src string
	}{
		{&hit.FullSeqEValue, m[5]},
		{&hit.FullSeqScore, m[6]},
		{&hit.FullSeqBias, m[7]},
		{&hit.BestDomEValue, m[8]},
		{&hit.BestDomScore, m[9]},
		{&hit.BestDomBias, m[10]},
		{&hit.Exp, m[11]},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(f.src, 64)
		if err != nil {
			return Hit{}, err
		}
		*f.dst = v
	}

	ints := []struct {
		dst *int
		src string
	}{
		{&hit.Reg, m[12]},
		{&hit.Clu, m[13]},
		{&hit.Ov, m[14]},
		{&hit.Env, m[15]},
		{&hit.Dom, m[16]},
		{&hit.Rep, m[17]},
		{&hit.Inc, m[18]},
	}
	for _, n := range ints {
		v, err := strconv.Atoi(n.src)
		if err != nil {
			return Hit{}, err
		}
		*n.dst = v
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
