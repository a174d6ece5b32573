package rmsd

import (
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"rmsd2matlab/applog"
	"rmsd2matlab/indexfile"
	"rmsd2matlab/manifest"
)

// Row is one output record: a single frame of a single sample, with the
// sample and condition recoded to their integer indices.
type Row struct {
	Sample    int     `csv:"sample"`
	Condition int     `csv:"condition"`
	Frame     int     `csv:"frame"`
	RMSD      float64 `csv:"RMSD"`
}

// Aggregate walks the conditions in manifest order and concatenates every
// sample's RMSD trace into one recoded table. A condition whose directory
// holds no qualifying data file is skipped with a warning; a file name that
// breaks the naming convention or a name missing from the index aborts the
// run.
func Aggregate(conditions []manifest.Condition, ix *indexfile.Index, log *applog.Logger) ([]Row, error) {
	var out []Row

	for _, condition := range conditions {
		files, err := DataFiles(condition.Dir)
		if err != nil {
			return nil, err
		}

		if len(files) == 0 {
			log.Warningf("Condition %s: no RMSD files, this condition is skipped.", condition.Name)
			continue
		}

		plural := ""
		if len(files) > 1 {
			plural = "s"
		}
		log.Infof("Retrieving %d file%s data for condition: %s", len(files), plural, condition.Name)

		conditionIndex, err := ix.Condition(condition.Name)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			sample, err := SampleName(file)
			if err != nil {
				return nil, err
			}

			series, err := ReadSeries(filepath.Join(condition.Dir, file), sample)
			if err != nil {
				return nil, err
			}
			log.Infof("%-50s%d frames.", "\t\t- "+sample+":", len(series.Frames))

			sampleIndex, err := ix.Sample(sample)
			if err != nil {
				return nil, err
			}

			for i, frame := range series.Frames {
				out = append(out, Row{
					Sample:    sampleIndex,
					Condition: conditionIndex,
					Frame:     frame,
					RMSD:      series.Values[i],
				})
			}
		}
	}

	return out, nil
}

// WriteTable serializes rows as CSV with header sample,condition,frame,RMSD.
// It is only called after the full pass has succeeded, so a fatal error
// never leaves a partial output file behind.
func WriteTable(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return f.Close()
}
