package gtdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aaronmussig/prole/genome"
)

// GenomeDirs maps each genome accession to the path of its source file,
// as listed in the GTDB genome_dirs.tsv index.
type GenomeDirs map[genome.GenomeID]string

// ReadGenomeDirs parses a genome_dirs.tsv index. Each line holds at
// least two tab-separated fields: the accession and its path.
func ReadGenomeDirs(r io.Reader) (GenomeDirs, error) {
	out := make(GenomeDirs)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("gtdb: error parsing genome_dirs line: %s", line)
		}
		out[genome.GenomeID(fields[0])] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadGenomeDirsPath parses a genome_dirs.tsv index from a file.
func ReadGenomeDirsPath(path string) (GenomeDirs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGenomeDirs(f)
}

// Path returns the source file path for the given accession.
func (d GenomeDirs) Path(id genome.GenomeID) (string, bool) {
	p, ok := d[id]
	return p, ok
}
