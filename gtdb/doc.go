/*
Package gtdb models the Genome Taxonomy Database's 7-rank taxonomy and
provides readers for two of its distribution files: the genome_dirs.tsv
index mapping accessions to on-disk paths, and the R214 per-genome
metadata table.
*/
package gtdb
