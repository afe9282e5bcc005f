package hmmalign

// An Alignment is the parsed contents of an hmmalign output file.
type Alignment struct {
	// Seq maps each gene identifier to its full aligned sequence,
	// gap and insert characters included.
	Seq map[string]string

	// PP maps each gene identifier to its posterior probability string,
	// one confidence character per alignment column.
	PP map[string]string

	// PPCons is the column-wise consensus posterior probability string.
	PPCons string

	// Mask holds one entry per alignment column; true marks a column the
	// reference mask retains.
	Mask []bool

	// MaskIdx lists the retained column indices in ascending order.
	MaskIdx []int
}

// Masked returns the aligned sequence for the given gene reduced to the
// columns retained by the reference mask, in ascending column order.
//
// A NotFoundError is returned if the gene has no aligned sequence, and an
// OutOfRangeError if a retained column lies beyond the end of it.
func (a *Alignment) Masked(name string) (string, error) {
	s, ok := a.Seq[name]
	if !ok {
		return "", NotFoundError(name)
	}
	out := make([]byte, len(a.MaskIdx))
	for i, col := range a.MaskIdx {
		if col >= len(s) {
			return "", &OutOfRangeError{Name: name, Column: col, Len: len(s)}
		}
		out[i] = s[col]
	}
	return string(out), nil
}
