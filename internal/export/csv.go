// Package export renders comparison results into CSV for spreadsheets.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/bandcheck/bandcheck/pkg/models"
)

// comparisonHeader matches the column layout of the comparison table.
var comparisonHeader = []string{
	"Device", "Carrier", "Compatibility Score",
	"Supported LTE", "Supported 5G", "Missing Core LTE", "Status",
}

// WriteComparison writes the comparison's rows as CSV, one line per
// device/carrier pairing.
func WriteComparison(w io.Writer, cmp *models.Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(comparisonHeader); err != nil {
		return err
	}
	for _, row := range cmp.Rows {
		record := []string{
			row.Model,
			row.Carrier,
			strconv.FormatFloat(row.Score, 'f', 1, 64),
			joinBands(row.SupportedLTE),
			joinBands(row.SupportedNR),
			joinBands(row.MissingCoreLTE),
			row.Status,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinBands(bands []int) string {
	parts := make([]string, len(bands))
	for i, b := range bands {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, " ")
}
