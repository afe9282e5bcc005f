/*
Package phylorank provides the Relative Evolutionary Divergence (RED)
score type and a reader for the per-rank RED dictionary that PhyloRank
writes alongside its decorated trees.
*/
package phylorank
