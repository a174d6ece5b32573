package indexfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeIndexXLSX builds a two-sheet index workbook: sheet "samples" maps
// sample names to indices, sheet "conditions" maps condition names.
func writeIndexXLSX(t *testing.T, dir string, samples, conditions map[string]int) string {
	t.Helper()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "samples"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet("conditions"); err != nil {
		t.Fatal(err)
	}

	fill := func(sheet, nameHeader string, table map[string]int) {
		if err := f.SetCellValue(sheet, "A1", nameHeader); err != nil {
			t.Fatal(err)
		}
		if err := f.SetCellValue(sheet, "B1", "index"); err != nil {
			t.Fatal(err)
		}
		rowID := 2
		for name, v := range table {
			cell, err := excelize.CoordinatesToCellName(1, rowID)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, name); err != nil {
				t.Fatal(err)
			}
			cell, err = excelize.CoordinatesToCellName(2, rowID)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
			rowID++
		}
	}
	fill("samples", "sample", samples)
	fill("conditions", "condition", conditions)

	path := filepath.Join(dir, "index.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestOpenResolvesSamplesAndConditions(t *testing.T) {
	path := writeIndexXLSX(t, t.TempDir(),
		map[string]int{"s1": 0, "s2": 1},
		map[string]int{"WT": 0, "insertions": 1})

	ix, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if v, err := ix.Sample("s2"); err != nil || v != 1 {
		t.Errorf("Sample(s2) = %d, %v; want 1, nil", v, err)
	}
	if v, err := ix.Condition("WT"); err != nil || v != 0 {
		t.Errorf("Condition(WT) = %d, %v; want 0, nil", v, err)
	}
}

func TestMissingNamesAreNamedInErrors(t *testing.T) {
	path := writeIndexXLSX(t, t.TempDir(),
		map[string]int{"s1": 0},
		map[string]int{"WT": 0})

	ix, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ix.Sample("ghost"); err == nil {
		t.Error("expected an error for a missing sample")
	} else if !strings.Contains(err.Error(), `"ghost"`) || !strings.Contains(err.Error(), path) {
		t.Errorf("sample error should name the sample and the index file: %v", err)
	}

	if _, err := ix.Condition("mutant"); err == nil {
		t.Error("expected an error for a missing condition")
	} else if !strings.Contains(err.Error(), `"mutant"`) || !strings.Contains(err.Error(), "second tab") {
		t.Errorf("condition error should name the condition and the tab: %v", err)
	}
}

func TestOpenRejectsSingleSheetWorkbook(t *testing.T) {
	f := excelize.NewFile()
	if err := f.SetCellValue("Sheet1", "A1", "sample"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "index.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected an error for a single-sheet index file")
	}
}

func TestCopyTo(t *testing.T) {
	srcDir, destDir := t.TempDir(), t.TempDir()
	path := writeIndexXLSX(t, srcDir, map[string]int{"s1": 0}, map[string]int{"WT": 0})

	ix, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	dest, err := ix.CopyTo(destDir)
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(dest) != filepath.Base(path) {
		t.Errorf("copy should keep the original filename, got %s", dest)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	copied, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(copied) == 0 || len(copied) != len(src) {
		t.Errorf("copied index file differs: %d bytes vs %d", len(copied), len(src))
	}
}
