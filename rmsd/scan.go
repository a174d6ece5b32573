// Package rmsd aggregates per-sample RMSD time series into one recoded
// table: one row per (condition, sample, frame) triple, with sample and
// condition names replaced by the integer codes from the index file.
package rmsd

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
)

// fileNamePattern extracts the sample name from a data file name. The first
// group is greedy, so RMSD_JQ0591_ORF1_traj.csv yields sample JQ0591_ORF1.
var fileNamePattern = regexp.MustCompile(`RMSD_(.+)_.+\.csv`)

// DataFiles lists the per-sample RMSD file names in dir, sorted
// lexicographically. A file qualifies when its name starts with "RMSD",
// does not contain "histogram", and ends with ".csv"; histogram exports
// from the upstream RMS analysis live in the same directory and must not
// be swept into the table.
func DataFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "RMSD") {
			continue
		}
		if strings.Contains(name, "histogram") {
			continue
		}
		if !strings.HasSuffix(name, ".csv") {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// SampleName extracts the sample name from a data file name. A qualifying
// file that does not fit the naming convention is a fatal condition for the
// whole run, not a per-file skip.
func SampleName(filename string) (string, error) {
	m := fileNamePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", fmt.Errorf("no match between the pattern %q and the file name %s", fileNamePattern.String(), filename)
	}

	return m[1], nil
}
