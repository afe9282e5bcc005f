/*
Package pfam provides routines for reading the per-domain hit tables
produced by PyPfam (pfam_scan style output).

Comment lines and blank lines are skipped; every remaining line describes
one hit of a Pfam HMM against a target sequence.
*/
package pfam
