package bodyweight

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"date", "kg"}

// WriteCSV writes entries as "date,kg" rows, header first.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{e.Date.String(), strconv.FormatFloat(e.Kg, 'f', -1, 64)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
