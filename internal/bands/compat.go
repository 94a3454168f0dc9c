package bands

import "sort"

// Report is the outcome of checking one device's bands against one
// carrier. All fields are sorted ascending and never nil, so reports
// serialize and display deterministically.
type Report struct {
	SupportedLTE   []int `json:"supported_lte" doc:"Device LTE bands the carrier operates"`
	MissingLTE     []int `json:"missing_lte" doc:"Carrier LTE bands the device lacks"`
	MissingCoreLTE []int `json:"missing_core_lte" doc:"Mandatory LTE bands the device lacks"`
	SupportedNR    []int `json:"supported_nr" doc:"Device NR bands the carrier operates"`
	MissingNR      []int `json:"missing_nr" doc:"Carrier NR bands the device lacks"`
}

// Score condenses a report into a single ranking value: supported LTE
// bands count double, supported NR bands count once, and each missing
// core LTE band costs two points. Never negative.
func (r Report) Score() float64 {
	score := 2.0*float64(len(r.SupportedLTE)) +
		float64(len(r.SupportedNR)) -
		2.0*float64(len(r.MissingCoreLTE))
	if score < 0 {
		return 0
	}
	return score
}

// Evaluate checks the device's band sets against every carrier in the
// table and returns one report per carrier. Empty band slices and empty
// tables are valid inputs.
func Evaluate(lte, nr []int, table CarrierTable) map[string]Report {
	deviceLTE := toSet(lte)
	deviceNR := toSet(nr)

	reports := make(map[string]Report, len(table))
	for _, c := range table {
		reports[c.Name] = compare(deviceLTE, deviceNR, c)
	}
	return reports
}

func compare(deviceLTE, deviceNR map[int]struct{}, c Carrier) Report {
	supportedLTE, missingLTE := partition(deviceLTE, c.LTE)
	supportedNR, missingNR := partition(deviceNR, c.NR)

	missing := toSet(missingLTE)
	missingCore := make([]int, 0, len(c.CoreLTE))
	for _, b := range c.CoreLTE {
		if _, ok := missing[b]; ok {
			missingCore = append(missingCore, b)
		}
	}
	sort.Ints(missingCore)

	return Report{
		SupportedLTE:   supportedLTE,
		MissingLTE:     missingLTE,
		MissingCoreLTE: missingCore,
		SupportedNR:    supportedNR,
		MissingNR:      missingNR,
	}
}

// partition splits the carrier's required bands into those the device has
// and those it lacks, both sorted ascending.
func partition(device map[int]struct{}, required []int) (supported, missing []int) {
	supported = make([]int, 0, len(required))
	missing = make([]int, 0, len(required))
	for _, b := range required {
		if _, ok := device[b]; ok {
			supported = append(supported, b)
		} else {
			missing = append(missing, b)
		}
	}
	sort.Ints(supported)
	sort.Ints(missing)
	return supported, missing
}

func toSet(values []int) map[int]struct{} {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// RankedCarrier pairs a carrier name with its report and score for
// ranked display.
type RankedCarrier struct {
	Carrier string  `json:"carrier" doc:"Carrier name"`
	Score   float64 `json:"score" doc:"Compatibility score"`
	Report  Report  `json:"report" doc:"Full compatibility report"`
}

// Rank orders the table's carriers by descending score. Carriers with
// equal scores keep their table order.
func Rank(table CarrierTable, reports map[string]Report) []RankedCarrier {
	ranked := make([]RankedCarrier, 0, len(table))
	for _, c := range table {
		rep, ok := reports[c.Name]
		if !ok {
			continue
		}
		ranked = append(ranked, RankedCarrier{Carrier: c.Name, Score: rep.Score(), Report: rep})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
