package rmsd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Series is the per-frame RMSD trace of one sample, in source-file order.
type Series struct {
	Sample string
	Frames []int
	Values []float64
}

type seriesRow struct {
	Frame int     `csv:"frames"`
	RMSD  float64 `csv:"RMSD"`
}

// ReadSeries loads the frames and RMSD columns from the per-sample file at
// path. Both columns must be present in the header; columns beyond them are
// ignored and row order is preserved.
func ReadSeries(path, sample string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, pfx.Err(err)
	}
	defer f.Close()

	r, err := maybeDecompress(f)
	if err != nil {
		return Series{}, pfx.Err(err)
	}
	defer r.Close()

	contents, err := io.ReadAll(r)
	if err != nil {
		return Series{}, pfx.Err(err)
	}

	if err := checkSeriesHeader(path, contents); err != nil {
		return Series{}, err
	}

	var rows []seriesRow
	if err := gocsv.UnmarshalBytes(contents, &rows); err != nil {
		return Series{}, pfx.Err(err)
	}

	out := Series{Sample: sample}
	for _, row := range rows {
		out.Frames = append(out.Frames, row.Frame)
		out.Values = append(out.Values, row.RMSD)
	}

	return out, nil
}

// checkSeriesHeader rejects a data file whose header lacks a required
// column. Without this, a misnamed column would decode as zero values and
// corrupt rows would reach the output table.
func checkSeriesHeader(path string, contents []byte) error {
	header, err := csv.NewReader(bytes.NewReader(contents)).Read()
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: reading header: %v", path, err))
	}

	for _, required := range []string{"frames", "RMSD"} {
		found := false
		for _, column := range header {
			if column == required {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s: missing required column %q", path, required)
		}
	}

	return nil
}
