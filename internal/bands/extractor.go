// Package bands extracts LTE and 5G NR band numbers from free-form device
// specification text and evaluates them against carrier requirements.
package bands

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Plausible band-number ranges. LTE allocations stop well short of 100;
// NR FR1/FR2 allocations fit inside 300. Anything outside is treated as
// noise (frequencies, model numbers) that slipped past the line filters.
const (
	maxLTEBand = 100
	maxNRBand  = 300
)

var (
	// Start of an NR band expression: "n77", "n1/2/3", "n28A". The chain
	// of further digit groups is walked manually in scanNR.
	nrStartPattern = regexp.MustCompile(`(?i)n(\d+)`)

	// A line is scanned for LTE bands when it carries an LTE keyword or a
	// B-prefixed number anywhere in it.
	lteKeywordPattern = regexp.MustCompile(`(?i)\b(?:4G|LTE|TD-LTE|FDD)\b`)
	ltePrefixPattern  = regexp.MustCompile(`(?i)\bB\d+`)

	// Frequency annotations like "(1900 MHz)" are removed before scanning
	// so the numbers inside never read as band numbers.
	parenPattern = regexp.MustCompile(`\s*\([^)]*\)`)

	// "B2", "b41", bare "28", "28A". Only the digit run is captured; the
	// optional prefix and band-class suffix letters are discarded.
	lteTokenPattern = regexp.MustCompile(`(?i)\bB?(\d+)(?:[ab])?\b`)
)

// Extract parses text and returns the LTE and NR band numbers found in it,
// each sorted ascending with duplicates removed. Text with no band
// information yields two empty slices; Extract never fails.
//
// The same numeral may appear in both results (band 41 exists in both
// numbering plans), so no cross-deduplication happens between the two.
func Extract(text string) (lte, nr []int) {
	lteSet := make(map[int]struct{})
	nrSet := make(map[int]struct{})

	// NR bands are scanned across the whole text: an "n" marker is
	// unambiguous regardless of which line or section it sits in.
	scanNR(text, nrSet)

	// LTE bands are ambiguous bare integers, so only lines that look
	// LTE-related are scanned, and values outside the plausible range
	// are dropped.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !lteKeywordPattern.MatchString(line) && !ltePrefixPattern.MatchString(line) {
			continue
		}
		clean := parenPattern.ReplaceAllString(line, "")
		// Mask NR expressions first: the digit groups of "n1/2/3" sit on
		// word boundaries and would otherwise read as LTE bands 2 and 3.
		clean = scanNR(clean, nil)
		for _, m := range lteTokenPattern.FindAllStringSubmatch(clean, -1) {
			addBand(lteSet, m[1], maxLTEBand)
		}
	}

	return sortedBands(lteSet), sortedBands(nrSet)
}

// scanNR locates NR band expressions in s, adds their band numbers to out
// when out is non-nil, and returns s with the matched expressions blanked.
//
// An expression is "n" plus a digit group, then further digit groups each
// chained by a single slash, comma, or space. A space-chained group glued
// to a letter is a technology token like the "5G" in "n1/2/3 5G", not a
// band, and ends the chain. A single trailing suffix letter ("n28A") is
// left unconsumed, dropping it from the number.
func scanNR(s string, out map[int]struct{}) string {
	matches := nrStartPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	blanked := []byte(s)
	for _, m := range matches {
		if out != nil {
			addBand(out, s[m[2]:m[3]], maxNRBand)
		}
		pos := m[1]
		for pos < len(s) {
			sep := s[pos]
			if sep != '/' && sep != ',' && sep != ' ' && sep != '\t' {
				break
			}
			j := pos + 1
			k := j
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			if k == j {
				break
			}
			if (sep == ' ' || sep == '\t') && k < len(s) && isLetter(s[k]) {
				break
			}
			if out != nil {
				addBand(out, s[j:k], maxNRBand)
			}
			pos = k
		}
		for i := m[0]; i < pos; i++ {
			blanked[i] = ' '
		}
	}
	return string(blanked)
}

// addBand parses digits and records the value when it falls inside the
// plausible range. Parse failures are dropped silently.
func addBand(set map[int]struct{}, digits string, max int) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > max {
		return
	}
	set[n] = struct{}{}
}

func sortedBands(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
