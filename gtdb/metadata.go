package gtdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aaronmussig/prole/genome"

	"github.com/klauspost/pgzip"
)

// metadataColumns is the column count of the R214 metadata table.
const metadataColumns = 110

// A MetadataRow is one genome's entry in the GTDB metadata table. Only
// the columns this module consumes are retained; the remaining hundred
// odd columns are validated for presence but not parsed.
type MetadataRow struct {
	Accession genome.GenomeID
	// Representative is true when this genome is the GTDB species
	// representative.
	Representative bool
	Taxonomy       Taxonomy
}

// Metadata maps each genome accession to its metadata row.
type Metadata map[genome.GenomeID]MetadataRow

// ParseMetadataRow parses one data line of the R214 metadata table.
func ParseMetadataRow(line string) (MetadataRow, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != metadataColumns {
		return MetadataRow{}, fmt.Errorf(
			"gtdb: metadata row has %d columns, expected %d", len(fields), metadataColumns)
	}
	taxonomy, err := ParseTaxonomy(fields[16])
	if err != nil {
		return MetadataRow{}, err
	}
	return MetadataRow{
		Accession:      genome.GenomeID(fields[0]),
		Representative: fields[15] == "t",
		Taxonomy:       taxonomy,
	}, nil
}

// ReadMetadata parses the R214 metadata table. The header line and blank
// lines are skipped.
func ReadMetadata(r io.Reader) (Metadata, error) {
	out := make(Metadata)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<22)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || strings.HasPrefix(line, "accession\tambiguous_bases") {
			continue
		}
		row, err := ParseMetadataRow(line)
		if err != nil {
			return nil, err
		}
		out[row.Accession] = row
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadMetadataPath parses the R214 metadata table from a file.
func ReadMetadataPath(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMetadata(f)
}

// ReadMetadataPathGz parses the R214 metadata table from the gzip
// compressed form it is distributed in.
func ReadMetadataPathGz(path string) (Metadata, error) {
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
	return ReadMetadata(gz)
}
