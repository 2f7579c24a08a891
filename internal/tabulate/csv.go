package tabulate

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, rows)
}

// Write streams rows as CSV with a header line.
func Write(out io.Writer, rows []Row) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"index",
		"capital",
		"productivity",
		"rate",
		"action",
		"reward",
		"next_capital",
		"next_productivity",
		"next_on_grid",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.Capital),
			fmtFloat(r.Productivity),
			fmtFloat(r.Rate),
			string(r.Action),
			fmtFloat(r.Reward),
			fmtFloat(r.NextCapital),
			fmtFloat(r.NextProductivity),
			strconv.FormatBool(r.NextOnGrid),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
