package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandcheck/bandcheck/pkg/models"
)

func TestWriteComparison(t *testing.T) {
	cmp := &models.Comparison{
		Rows: []models.ComparisonRow{
			{
				Model:          "Pixel 9",
				Carrier:        "Verizon",
				Score:          9,
				SupportedLTE:   []int{2, 4, 13, 66},
				SupportedNR:    []int{77},
				MissingCoreLTE: []int{},
				Status:         "Excellent",
			},
			{
				Model:          "Galaxy, Intl",
				Carrier:        "AT&T",
				Score:          2.5,
				SupportedLTE:   []int{2},
				SupportedNR:    []int{},
				MissingCoreLTE: []int{12, 17},
				Status:         "Limited",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, cmp))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Device", "Carrier", "Compatibility Score",
		"Supported LTE", "Supported 5G", "Missing Core LTE", "Status",
	}, records[0])
	assert.Equal(t, []string{"Pixel 9", "Verizon", "9.0", "2 4 13 66", "77", "", "Excellent"}, records[1])
	// The comma in the model name survives the round trip.
	assert.Equal(t, []string{"Galaxy, Intl", "AT&T", "2.5", "2", "", "12 17", "Limited"}, records[2])
}

func TestWriteComparisonNoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, &models.Comparison{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}
