package genome

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/klauspost/pgzip"
)

// A Record is one FASTA entry: the header text after the identifier and
// the sequence with any trailing '*' stop character removed.
type Record struct {
	Desc string
	Seq  string
}

// A FastaFile maps each sequence identifier (the first token of a FASTA
// header) to its record. Identifiers must be unique within a file.
type FastaFile map[string]Record

// ReadFasta builds a FastaFile from FASTA formatted input.
func ReadFasta(r io.Reader) (FastaFile, error) {
	fr := fasta.NewReader(r)
	out := make(FastaFile)
	for {
		s, err := fr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		name, desc := s.Name, ""
		if i := strings.IndexAny(name, " \t"); i >= 0 {
			name, desc = name[:i], strings.TrimSpace(name[i+1:])
		}
		if _, ok := out[name]; ok {
			return nil, fmt.Errorf("genome: duplicate fasta id: %s", name)
		}

		sq := strings.TrimSuffix(fmt.Sprintf("%s", s.Residues), "*")
		out[name] = Record{Desc: desc, Seq: sq}
	}
	return out, nil
}

// ReadFastaPath builds a FastaFile from a file.
func ReadFastaPath(path string) (FastaFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFasta(f)
}

// ReadFastaPathGz builds a FastaFile from a gzip compressed file.
func ReadFastaPathGz(path string) (FastaFile, error) {
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
	return ReadFasta(gz)
}

// Sequence returns the sequence stored for the given identifier.
func (f FastaFile) Sequence(id string) (string, bool) {
	rec, ok := f[id]
	return rec.Seq, ok
}

// Length returns the sequence length for the given identifier.
func (f FastaFile) Length(id string) (int, bool) {
	rec, ok := f[id]
	return len(rec.Seq), ok
}

// Description returns the header description for the given identifier.
func (f FastaFile) Description(id string) (string, bool) {
	rec, ok := f[id]
	return rec.Desc, ok
}
