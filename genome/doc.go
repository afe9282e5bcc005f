/*
Package genome provides an identifier-keyed view of genome FASTA files
along with canonicalization of GenBank/RefSeq genome accessions.

FASTA record parsing itself is delegated to the TuftsBCB/io/fasta reader;
this package only splits headers into identifier and description, strips
trailing stop characters and enforces identifier uniqueness.
*/
package genome
