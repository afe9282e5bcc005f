package gtdb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaronmussig/prole/genome"
)

const testTaxonomyString = "d__d1;p__p1;c__c1;o__o1;f__f1;g__g1;s__s1 s2"

func TestParseTaxonomy(t *testing.T) {
	taxonomy, err := ParseTaxonomy(testTaxonomyString)
	if err != nil {
		t.Fatalf("%s", err)
	}
	wants := map[Rank]Taxon{
		Domain:  "d__d1",
		Phylum:  "p__p1",
		Class:   "c__c1",
		Order:   "o__o1",
		Family:  "f__f1",
		Genus:   "g__g1",
		Species: "s__s1 s2",
	}
	for rank, want := range wants {
		if got := taxonomy.Get(rank); got != want {
			t.Fatalf("Taxon at %s is %q, expected %q", rank, got, want)
		}
	}
	if taxonomy.String() != testTaxonomyString {
		t.Fatalf("Round trip mismatch: %s", taxonomy)
	}
}

func TestParseTaxonomyTrimsSpace(t *testing.T) {
	taxonomy, err := ParseTaxonomy("d__d1; p__p1 ;c__c1;o__o1;f__f1;g__g1; s__s1")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if taxonomy.Phylum != "p__p1" {
		t.Fatalf("Whitespace was not trimmed: %q", taxonomy.Phylum)
	}
}

func TestParseTaxonomyWrongFieldCount(t *testing.T) {
	if _, err := ParseTaxonomy("d__d1;p__p1"); err == nil {
		t.Fatalf("Expected an error for 2 fields.")
	}
}

func TestReadGenomeDirs(t *testing.T) {
	lines := []string{
		"GCA_934854595.1\t/tmp/a\tG934854595",
		"GCA_934854545.1\t/tmp/b/b\tG934854545",
		"GCA_934854535.1\t/c\tG934854535",
	}
	dirs, err := ReadGenomeDirs(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("%s", err)
	}
	wants := map[genome.GenomeID]string{
		"GCA_934854595.1": "/tmp/a",
		"GCA_934854545.1": "/tmp/b/b",
		"GCA_934854535.1": "/c",
	}
	for id, want := range wants {
		if got, ok := dirs.Path(id); !ok || got != want {
			t.Fatalf("Path for %s is %q, expected %q", id, got, want)
		}
	}
	if _, ok := dirs.Path("GCA_000000000.1"); ok {
		t.Fatalf("Unexpected path for an unknown accession.")
	}
}

func TestReadGenomeDirsShortLine(t *testing.T) {
	if _, err := ReadGenomeDirs(strings.NewReader("GCA_934854595.1\n")); err == nil {
		t.Fatalf("Expected an error for a line with one field.")
	}
}

func TestReadGenomeDirsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genome_dirs.tsv")
	content := "GCA_934854595.1\t/tmp/a\tG934854595\n"
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	dirs, err := ReadGenomeDirsPath(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if got, ok := dirs.Path("GCA_934854595.1"); !ok || got != "/tmp/a" {
		t.Fatalf("Wrong path: %q", got)
	}
}

const testMetadataRow = "RS_GCF_000246985.2\t44\t99.5\t0.5\t299\tp__Euryarchaeota (UID4)\t202\t0\t2014456\t90.93903317665627\t1\t954455\t43.08802922449628\t2215172\tRS_GCF_024054535.1\tf\td__Archaea;p__Methanobacteriota_B;c__Thermococci;o__Thermococcales;f__Thermococcaceae;g__Thermococcus_A;s__Thermococcus_A alcaliphilus\ttype strain of species\tLPSN\tf\t1\t1\t2215172\t2215172\t2215172\t1\t3020\tNC_022084.1\t2215172\t2\t103\tNC_022084.1\t3020\t5561\t0\t99.901\tAKID01000054.18410.21433\tArchaea;Euryarchaeota;Thermococci;Thermococcales;Thermococcaceae;Thermococcus;Thermococcus sp. PK\t2215172\t2215172\tt\tf\tf\t2215172\t2215172\tComplete Genome\tASM24698v3\tna\tPRJNA224116\tSAMN02603679\tnone\tnone\tnone\t2013-08-13\tGCA_000246985.3\tnone\tfull\tnone\tnone\tnone\t1\t0\tThermococcus litoralis DSM 5473\t2402\trepresentative genome\t4\t1\t1\t2215172\t2215172\t2215172\t2013/08/13\t0\t2265\t1\tDSM 5473\tNew England Biolabs, Inc.\t523849\td__Archaea;p__Euryarchaeota;c__Thermococci;o__Thermococcales;f__Thermococcaceae;g__Thermococcus;s__Thermococcus litoralis\td__Archaea;p__Euryarchaeota;c__Thermococci;o__Thermococcales;f__Thermococcaceae;g__Thermococcus;s__Thermococcus litoralis;x__Thermococcus litoralis DSM 5473\t0\t2215172\t11\t46\tassembly from type material\t2215172\t0\tnone\t2497\t1\t2215172\t1\tnone\tnone\tnone\tnone\tnone\tnone\t1485\tNC_022084.1\t1485\t2743\t0\t100\tCP006670.774259.775759\tArchaea;Euryarchaeota;Thermococci;Thermococcales;Thermococcaceae;Thermococcus;Thermococcus litoralis DSM 5473\t0\t19\t45\t0"

func TestParseMetadataRow(t *testing.T) {
	row, err := ParseMetadataRow(testMetadataRow)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if row.Accession != "RS_GCF_000246985.2" {
		t.Fatalf("Wrong accession: %s", row.Accession)
	}
	if row.Representative {
		t.Fatalf("Expected a non-representative genome.")
	}
	if row.Taxonomy.Domain != "d__Archaea" {
		t.Fatalf("Wrong domain: %s", row.Taxonomy.Domain)
	}
	if row.Taxonomy.Species != "s__Thermococcus_A alcaliphilus" {
		t.Fatalf("Wrong species: %s", row.Taxonomy.Species)
	}
}

func TestParseMetadataRowWrongColumnCount(t *testing.T) {
	if _, err := ParseMetadataRow("RS_GCF_000246985.2\t44"); err == nil {
		t.Fatalf("Expected an error for a truncated row.")
	}
}

func TestReadMetadata(t *testing.T) {
	content := "accession\tambiguous_bases\tand so on\n" + testMetadataRow + "\n"
	md, err := ReadMetadata(strings.NewReader(content))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(md) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(md))
	}
	row, ok := md["RS_GCF_000246985.2"]
	if !ok {
		t.Fatalf("Missing row for RS_GCF_000246985.2.")
	}
	if row.Taxonomy.Genus != "g__Thermococcus_A" {
		t.Fatalf("Wrong genus: %s", row.Taxonomy.Genus)
	}
}
