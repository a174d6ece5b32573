// rmsd2matlab aggregates the per-sample RMSD CSV files of a molecular
// dynamics RMS analysis into one table recoded for MatLab: sample and
// condition names are replaced by the integer codes from a two-sheet index
// spreadsheet, and the index file is copied next to the output for the
// plotting side.
//
// The positional argument is a comma separated file without header whose
// first column is the condition, second column the directory holding that
// condition's RMS analysis files, and third column a hex color. The
// simulation time must be identical across samples for the merged frames to
// line up.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rmsd2matlab/applog"
	"rmsd2matlab/indexfile"
	"rmsd2matlab/manifest"
	"rmsd2matlab/rmsd"
)

func main() {
	var out, indexPath, logPath, logLevel string
	var showVersion bool

	flag.StringVar(&out, "o", "", "shorthand for -out.")
	flag.StringVar(&out, "out", "", "the path to the output CSV file (required).")
	flag.StringVar(&indexPath, "i", "", "shorthand for -index.")
	flag.StringVar(&indexPath, "index", "", "the path to the two-sheet index spreadsheet (required).")
	flag.StringVar(&logPath, "l", "", "shorthand for -log.")
	flag.StringVar(&logPath, "log", "", "the path for the log file; defaults to <output-dir>/<program>.log.")
	flag.StringVar(&logLevel, "log-level", "INFO", "log level: DEBUG, INFO, WARNING, ERROR, or CRITICAL.")
	flag.BoolVar(&showVersion, "version", false, "print the version and exit.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <manifest.csv>\n\n", progName())
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(buildDescription())
		return
	}

	if out == "" || indexPath == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	outDir := filepath.Dir(out)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if logPath == "" {
		logPath = filepath.Join(outDir, progName()+".log")
	}

	level, err := applog.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := applog.New(logPath, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Infof("version: %s", Version)
	log.Infof("CMD: %s", strings.Join(os.Args, " "))

	if err := run(flag.Arg(0), out, indexPath, log); err != nil {
		log.Errorf("%v", err)
		log.Close()
		os.Exit(1)
	}

	log.Close()
}

func run(manifestPath, out, indexPath string, log *applog.Logger) error {
	conditions, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	ix, err := indexfile.Open(indexPath)
	if err != nil {
		return err
	}

	rows, err := rmsd.Aggregate(conditions, ix, log)
	if err != nil {
		return err
	}

	// The table only hits disk once the full pass has succeeded.
	if err := rmsd.WriteTable(rows, out); err != nil {
		return err
	}
	log.Infof("RMSD data by sample and condition written: %s", out)

	dest, err := ix.CopyTo(filepath.Dir(out))
	if err != nil {
		return err
	}
	log.Infof("Index file copied to: %s", dest)

	return nil
}

func progName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
