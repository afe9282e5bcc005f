// Package util provides the shared logging and file handling helpers
// used by the command line tools in cmd. Library packages do not depend
// on it.
package util

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/pgzip"
)

// Logger is the shared logger for the command line tools. It writes
// timestamped, leveled records to stderr.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "2006-01-02 15:04:05",
})

// Verbose lowers the logger threshold to debug.
func Verbose() {
	Logger.SetLevel(log.DebugLevel)
}

// Assert exits the program when err is not nil, logging the error
// prefixed by the formatted message, if any.
func Assert(err error, v ...interface{}) {
	if err == nil {
		return
	}
	if len(v) == 0 {
		Logger.Fatal(err)
	}
	Logger.Fatalf("%s: %s", v[0], err)
}

// Fatalf logs the formatted message and exits the program.
func Fatalf(format string, v ...interface{}) {
	Logger.Fatalf(format, v...)
}

// OpenFile opens a file for reading, exiting the program on failure.
func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open '%s'", path)
	return f
}

// CreateFile creates (or truncates) a file for writing, exiting the
// program on failure.
func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create '%s'", path)
	return f
}

// IsGzip reports whether the path names a gzip compressed file.
func IsGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// OpenMaybeGzip opens a file for reading, transparently decompressing
// it when the name carries a .gz suffix. The returned closer releases
// both the decompressor and the underlying file.
func OpenMaybeGzip(path string) io.ReadCloser {
	f := OpenFile(path)
	if !IsGzip(path) {
		return f
	}
	gz, err := pgzip.NewReader(f)
	Assert(err, "Could not decompress '%s'", path)
	return &gzipFile{gz, f}
}

type gzipFile struct {
	*pgzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}
