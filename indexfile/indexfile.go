// Package indexfile reads the two-sheet spreadsheet that recodes sample and
// condition names into the integer indices used by the downstream plotting
// environment. Sheet 1 holds (sample, index) pairs, sheet 2 holds
// (condition, index) pairs, each with a header row.
package indexfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

type Index struct {
	samples    map[string]int
	conditions map[string]int
	path       string
}

// Open loads the index spreadsheet at path. Legacy .xls workbooks and .xlsx
// workbooks are both accepted; the format is chosen by file extension.
func Open(path string) (*Index, error) {
	var sheets [2]map[string]int
	var err error

	if strings.EqualFold(filepath.Ext(path), ".xls") {
		sheets, err = readXLS(path)
	} else {
		sheets, err = readXLSX(path)
	}
	if err != nil {
		return nil, err
	}

	return &Index{samples: sheets[0], conditions: sheets[1], path: path}, nil
}

// Path returns the path the index was loaded from.
func (ix *Index) Path() string {
	return ix.path
}

// Sample resolves a sample name to its integer index.
func (ix *Index) Sample(name string) (int, error) {
	v, ok := ix.samples[name]
	if !ok {
		return 0, fmt.Errorf("%q does not exist in the first tab of the index file: %s", name, ix.path)
	}

	return v, nil
}

// Condition resolves a condition name to its integer index.
func (ix *Index) Condition(name string) (int, error) {
	v, ok := ix.conditions[name]
	if !ok {
		return 0, fmt.Errorf("%q does not exist in the second tab of the index file: %s", name, ix.path)
	}

	return v, nil
}

// CopyTo copies the index spreadsheet into dir under its original filename,
// so the output directory is self-describing. It returns the destination
// path.
func (ix *Index) CopyTo(dir string) (string, error) {
	src, err := os.Open(ix.path)
	if err != nil {
		return "", pfx.Err(err)
	}
	defer src.Close()

	dest := filepath.Join(dir, filepath.Base(ix.path))
	out, err := os.Create(dest)
	if err != nil {
		return "", pfx.Err(err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", pfx.Err(err)
	}

	return dest, out.Close()
}

func readXLS(path string) ([2]map[string]int, error) {
	var out [2]map[string]int

	spreadsheet, err := xls.Open(path, "utf-8")
	if err != nil {
		return out, pfx.Err(err)
	}

	if n := spreadsheet.NumSheets(); n < 2 {
		return out, fmt.Errorf("index file %s has %d sheet(s); want 2 (samples, conditions)", path, n)
	}

	for sheetID := 0; sheetID < 2; sheetID++ {
		sheet := spreadsheet.GetSheet(sheetID)
		if sheet == nil {
			return out, fmt.Errorf("index file %s: sheet %d was nil", path, sheetID)
		}

		table := make(map[string]int)
		for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
			row := sheet.Row(rowID)
			if row == nil || rowID == 0 {
				// Header row, or a gap in the sheet.
				continue
			}

			name := row.Col(0)
			if name == "" {
				continue
			}

			v, err := parseIndexValue(row.Col(1))
			if err != nil {
				return out, fmt.Errorf("index file %s, sheet %d, row %d (%q): %v", path, sheetID+1, rowID+1, name, err)
			}
			table[name] = v
		}

		out[sheetID] = table
	}

	return out, nil
}

func readXLSX(path string) ([2]map[string]int, error) {
	var out [2]map[string]int

	f, err := excelize.OpenFile(path)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) < 2 {
		return out, fmt.Errorf("index file %s has %d sheet(s); want 2 (samples, conditions)", path, len(sheets))
	}

	for sheetID := 0; sheetID < 2; sheetID++ {
		rows, err := f.GetRows(sheets[sheetID])
		if err != nil {
			return out, pfx.Err(err)
		}

		table := make(map[string]int)
		for rowID, row := range rows {
			if rowID == 0 || len(row) < 2 || row[0] == "" {
				continue
			}

			v, err := parseIndexValue(row[1])
			if err != nil {
				return out, fmt.Errorf("index file %s, sheet %q, row %d (%q): %v", path, sheets[sheetID], rowID+1, row[0], err)
			}
			table[row[0]] = v
		}

		out[sheetID] = table
	}

	return out, nil
}

// parseIndexValue accepts both integer and float renderings, since
// spreadsheet writers store integer codes as numeric cells that may come
// back formatted as "3" or "3.0".
func parseIndexValue(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("index value %q is not numeric", s)
	}

	return int(v), nil
}
