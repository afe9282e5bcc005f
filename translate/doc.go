/*
Package translate converts nucleotide sequences to amino acid sequences
using NCBI translation tables. Only table 11 (bacterial, archaeal and
plant plastid code) is currently defined; stop codons translate to '-'.
*/
package translate
