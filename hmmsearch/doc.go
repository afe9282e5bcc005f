/*
Package hmmsearch provides routines for reading the tabular output
produced by HMMER's hmmsearch program with the --tblout option.

Each non-comment line describes one hit of a query profile against a
target sequence; comment lines and blank lines are skipped. Lines are
independent of one another, so hits are returned in file order with no
cross-line validation.
*/
package hmmsearch
