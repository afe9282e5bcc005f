/*
Package hmmalign provides routines for reading the Stockholm formatted
alignment files produced by HMMER's hmmalign program.

Unlike a general Stockholm reader, this package only understands the
single-block form that hmmalign emits: one aligned sequence row per gene,
one "#=GR <gene> PP" posterior probability row per gene, a single
"#=GC PP_cons" consensus row and a single "#=GC RF" reference mask row.
Wrapped (multi-block) alignments are not supported.

The whole file is read into memory and validated before any queries are
answered. Once built, an Alignment is never mutated and may be shared
freely across goroutines.
*/
package hmmalign
