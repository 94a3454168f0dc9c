package bands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLTE []int
		wantNR  []int
	}{
		{
			name:    "mixed 5G and 4G shorthand",
			text:    "5G n77, 4G B2, B4",
			wantLTE: []int{2, 4},
			wantNR:  []int{77},
		},
		{
			name:    "slash-chained NR bands",
			text:    "n1/2/3 5G, B41 LTE",
			wantLTE: []int{41},
			wantNR:  []int{1, 2, 3},
		},
		{
			name:    "band class suffix and frequency annotation",
			text:    "B28A (700)",
			wantLTE: []int{28},
			wantNR:  []int{},
		},
		{
			name:    "empty input",
			text:    "",
			wantLTE: []int{},
			wantNR:  []int{},
		},
		{
			name:    "no band information",
			text:    "The quick brown fox jumps over the lazy dog",
			wantLTE: []int{},
			wantNR:  []int{},
		},
		{
			name:    "NR suffix letter discarded",
			text:    "5G NR: n28A, n77",
			wantLTE: []int{},
			wantNR:  []int{28, 77},
		},
		{
			name:    "line without keyword or B prefix skipped",
			text:    "Bands 2, 4, 66 supported",
			wantLTE: []int{},
			wantNR:  []int{},
		},
		{
			name:    "LTE keyword makes bare numbers eligible",
			text:    "LTE 2, 4, 66",
			wantLTE: []int{2, 4, 66},
			wantNR:  []int{},
		},
		{
			name:    "TD-LTE and FDD keywords",
			text:    "TD-LTE 38/41\nFDD 1/3/7",
			wantLTE: []int{1, 3, 7, 38, 41},
			wantNR:  []int{},
		},
		{
			name:    "frequency annotations stripped before scanning",
			text:    "4G LTE B2 (1900 MHz), B5 (850 MHz)",
			wantLTE: []int{2, 5},
			wantNR:  []int{},
		},
		{
			name:    "values above 100 dropped as noise",
			text:    "LTE bands: 2, 4, 1900, 2600",
			wantLTE: []int{2, 4},
			wantNR:  []int{},
		},
		{
			name:    "NR values above 300 dropped as noise",
			text:    "sub-6 n78, n3500",
			wantLTE: []int{},
			wantNR:  []int{78},
		},
		{
			name:    "shared band number kept in both sets",
			text:    "4G: B41\n5G: n41",
			wantLTE: []int{41},
			wantNR:  []int{41},
		},
		{
			name:    "duplicates collapse",
			text:    "LTE B2, B2, B2\nn77 n77",
			wantLTE: []int{2},
			wantNR:  []int{77},
		},
		{
			name:    "lowercase markers",
			text:    "lte b12, b71\nn260",
			wantLTE: []int{12, 71},
			wantNR:  []int{260},
		},
		{
			name: "multi-line spec sheet",
			text: "Network Technology: GSM / HSPA / LTE / 5G\n" +
				"4G bands: 1, 2, 3, 4, 5, 7, 8, 12 (700)\n" +
				"5G bands: n1, n2, n3, n77, n78\n" +
				"Speed: HSPA 42.2/5.76 Mbps",
			wantLTE: []int{1, 2, 3, 4, 5, 7, 8, 12},
			wantNR:  []int{1, 2, 3, 77, 78},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lte, nr := Extract(tt.text)
			assert.Equal(t, tt.wantLTE, lte, "LTE bands")
			assert.Equal(t, tt.wantNR, nr, "NR bands")
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "4G: B2, B4, B13 (700)\n5G: n77/78, n260"

	lte1, nr1 := Extract(text)
	lte2, nr2 := Extract(text)

	assert.Equal(t, lte1, lte2)
	assert.Equal(t, nr1, nr2)
}

func TestExtractNeverNil(t *testing.T) {
	lte, nr := Extract("nothing here")
	assert.NotNil(t, lte)
	assert.NotNil(t, nr)
}
