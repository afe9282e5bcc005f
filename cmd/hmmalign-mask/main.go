// hmmalign-mask reduces the sequences in one or more hmmalign output
// files to the columns retained by their reference mask, and writes the
// result as FASTA.
package main

import (
	"io"
	"os"
	"sort"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"
	"github.com/alecthomas/kingpin"
	pb "gopkg.in/cheggaaa/pb.v1"

	"github.com/aaronmussig/prole/hmmalign"
	"github.com/aaronmussig/prole/util"
)

func main() {
	app := kingpin.New("hmmalign-mask",
		"Extract the mask-retained alignment columns from hmmalign output.")
	outFlag := app.Flag("out", "Output FASTA file (default stdout).").
		Short('o').Default("").String()
	verboseFlag := app.Flag("verbose", "Enable debug logging.").Bool()
	filesArg := app.Arg("align-file",
		"One or more hmmalign Stockholm files (.gz supported).").
		Required().Strings()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verboseFlag {
		util.Verbose()
	}

	var out io.Writer = os.Stdout
	if len(*outFlag) > 0 {
		f := util.CreateFile(*outFlag)
		defer f.Close()
		out = f
	}
	w := fasta.NewWriter(out)

	var bar *pb.ProgressBar
	if len(*filesArg) > 1 {
		bar = pb.StartNew(len(*filesArg))
		bar.Output = os.Stderr
	}
	for _, path := range *filesArg {
		maskFile(path, w)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	util.Assert(w.Flush(), "Could not write FASTA output")
}

func maskFile(path string, w *fasta.Writer) {
	util.Logger.Debug("Reading alignment", "path", path)

	r := util.OpenMaybeGzip(path)
	a, err := hmmalign.Read(r)
	util.Assert(r.Close())
	util.Assert(err, "Could not read alignment '%s'", path)

	names := make([]string, 0, len(a.Seq))
	for name := range a.Seq {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		masked, err := a.Masked(name)
		util.Assert(err, "Could not mask '%s'", name)
		s := seq.Sequence{Name: name, Residues: []seq.Residue(masked)}
		util.Assert(w.Write(s), "Could not write sequence '%s'", name)
	}
	util.Logger.Debug("Masked alignment",
		"path", path, "sequences", len(names), "columns", len(a.MaskIdx))
}
