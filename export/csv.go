// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/scmforge/dataset"
)

// WriteCSV writes t as CSV: a header of display names, then one record per
// sample. Floats use the shortest representation that round-trips.
func WriteCSV(w io.Writer, t *dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	cols := t.Columns()
	record := make([]string, len(cols))
	for i := 0; i < t.Rows(); i++ {
		for j, c := range cols {
			record[j] = formatValue(c, i)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

func formatValue(c dataset.Column, i int) string {
	if c.Kind == dataset.Categorical {
		return strconv.Itoa(int(c.Values[i]))
	}

	return strconv.FormatFloat(c.Values[i], 'g', -1, 64)
}
