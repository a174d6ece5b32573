// Package manifest loads the conditions manifest: a headerless delimited
// file with one row per experimental condition, columns condition name,
// data directory, and display color.
package manifest

import (
	"bytes"
	"encoding/csv"
	"os"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// Condition is one row of the manifest. The color is carried through for
// downstream plotting and is not validated here; the directory is validated
// implicitly when it is listed.
type Condition struct {
	Name  string
	Dir   string
	Color string
}

// Load reads the manifest at path, preserving row order. The delimiter is
// sniffed, so tab- or semicolon-separated manifests load as well as
// comma-separated ones.
func Load(path string) ([]Condition, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	r := csv.NewReader(bytes.NewReader(contents))
	r.Comma = determineDelimiter(contents)
	r.FieldsPerRecord = 3

	var conditions []Condition
	if err := gocsv.UnmarshalCSVWithoutHeaders(r, &conditions); err != nil {
		return nil, pfx.Err(err)
	}

	return conditions, nil
}

// determineDelimiter returns the single most likely rune that would delimit
// the values in the manifest, falling back to a comma.
func determineDelimiter(contents []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(contents), '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
