package hmmalign

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/klauspost/pgzip"
)

// maskRetained is the mask row character marking a retained column.
// Every other character marks an excluded column.
const maskRetained = 'x'

var (
	rePP     = regexp.MustCompile(`^#=GR (\S+)\s+PP\s+(\S+)$`)
	rePPCons = regexp.MustCompile(`^#=GC PP_cons\s+(\S+)$`)
	reMask   = regexp.MustCompile(`^#=GC RF\s+(\S+)$`)
	reSeq    = regexp.MustCompile(`^(\S+)\s+(\S+)$`)
)

type lineKind int

const (
	lineIgnored lineKind = iota
	lineSeq
	linePP
	linePPCons
	lineMask
)

// A record is one classified input line.
type record struct {
	kind lineKind
	name string // gene identifier, for lineSeq and linePP
	val  string // aligned string, posterior string or mask characters
	raw  string
}

// classify determines which of the five line shapes a line matches.
// The three "#=" prefixed forms must be tried before the generic
// two-token fallback, since a prefixed line is itself two tokens.
func classify(line string) (record, error) {
	switch {
	case len(line) == 0,
		strings.HasPrefix(line, "# STOCKHOLM"),
		strings.HasPrefix(line, "//"):
		return record{kind: lineIgnored, raw: line}, nil
	case strings.HasPrefix(line, "#=GR "):
		m := rePP.FindStringSubmatch(line)
		if m == nil {
			return record{}, MalformedLineError(line)
		}
		return record{kind: linePP, name: m[1], val: m[2], raw: line}, nil
	case strings.HasPrefix(line, "#=GC PP_cons"):
		m := rePPCons.FindStringSubmatch(line)
		if m == nil {
			return record{}, MalformedLineError(line)
		}
		return record{kind: linePPCons, val: m[1], raw: line}, nil
	case strings.HasPrefix(line, "#=GC RF"):
		m := reMask.FindStringSubmatch(line)
		if m == nil {
			return record{}, MalformedLineError(line)
		}
		return record{kind: lineMask, val: m[1], raw: line}, nil
	}
	m := reSeq.FindStringSubmatch(line)
	if m == nil {
		return record{}, MalformedLineError(line)
	}
	return record{kind: lineSeq, name: m[1], val: m[2], raw: line}, nil
}

// add routes a classified line into the alignment under construction,
// rejecting duplicates as it goes.
func (a *Alignment) add(rec record) error {
	switch rec.kind {
	case lineIgnored:
	case lineSeq:
		if _, ok := a.Seq[rec.name]; ok {
			return DuplicateRecordError(rec.raw)
		}
		a.Seq[rec.name] = rec.val
	case linePP:
		if _, ok := a.PP[rec.name]; ok {
			return DuplicateRecordError(rec.raw)
		}
		a.PP[rec.name] = rec.val
	case linePPCons:
		if len(a.PPCons) > 0 {
			return DuplicateRecordError(rec.raw)
		}
		a.PPCons = rec.val
	case lineMask:
		if a.Mask != nil {
			return DuplicateRecordError(rec.raw)
		}
		a.Mask = make([]bool, len(rec.val))
		for i := 0; i < len(rec.val); i++ {
			if rec.val[i] == maskRetained {
				a.Mask[i] = true
				a.MaskIdx = append(a.MaskIdx, i)
			}
		}
	default:
		panic(fmt.Sprintf("BUG: Unknown line kind: %d", rec.kind))
	}
	return nil
}

// validate checks the end-of-stream invariants in a fixed order and
// reports the first violation.
func (a *Alignment) validate() error {
	switch {
	case len(a.Seq) == 0:
		return IncompleteInputError("no sequence rows")
	case len(a.PP) == 0:
		return IncompleteInputError("no posterior rows")
	case len(a.Seq) != len(a.PP):
		return IncompleteInputError(fmt.Sprintf(
			"%d sequence rows but %d posterior rows", len(a.Seq), len(a.PP)))
	case len(a.PPCons) == 0:
		return IncompleteInputError("no consensus row")
	case len(a.Mask) == 0 || len(a.MaskIdx) == 0:
		return IncompleteInputError("no mask row")
	}
	return nil
}

// Read parses an hmmalign output file from the given reader. The entire
// input is consumed and validated before the Alignment is returned; a
// failed parse never returns a partial result.
func Read(r io.Reader) (*Alignment, error) {
	a := &Alignment{
		Seq: make(map[string]string),
		PP:  make(map[string]string),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<22)
	for scanner.Scan() {
		rec, err := classify(scanner.Text())
		if err != nil {
			return nil, err
		}
		if err := a.add(rec); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hmmalign: error reading alignment: %s", err)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// ReadPath parses an hmmalign output file from the file system.
func ReadPath(path string) (*Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// ReadPathGz parses a gzip compressed hmmalign output file from the
// file system.
func ReadPathGz(path string) (*Alignment, error) {
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
