package bands

// Carrier holds one carrier's band requirements. CoreLTE is the subset of
// LTE whose absence materially degrades service on that network.
type Carrier struct {
	Name    string `json:"name" doc:"Carrier name"`
	LTE     []int  `json:"lte_bands" doc:"LTE bands the carrier operates"`
	CoreLTE []int  `json:"core_lte_bands" doc:"Mandatory LTE bands"`
	NR      []int  `json:"nr_bands" doc:"5G NR bands the carrier operates"`
}

// CarrierTable is an ordered list of carrier profiles. The slice order is
// the display and iteration order, so identical inputs always produce
// identically ordered output. Tables are built once and treated as
// read-only afterwards; they are safe to share across goroutines.
type CarrierTable []Carrier

// Get returns the carrier with the given name.
func (t CarrierTable) Get(name string) (Carrier, bool) {
	for _, c := range t {
		if c.Name == name {
			return c, true
		}
	}
	return Carrier{}, false
}

// Names returns the carrier names in table order.
func (t CarrierTable) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// DefaultCarriers returns the built-in table of major US carriers.
func DefaultCarriers() CarrierTable {
	return CarrierTable{
		{
			Name:    "Verizon",
			LTE:     []int{2, 4, 5, 13, 41, 46, 48, 66, 71},
			CoreLTE: []int{2, 4, 13, 66},
			NR:      []int{2, 5, 66, 77, 260, 261},
		},
		{
			Name:    "AT&T",
			LTE:     []int{2, 4, 5, 12, 14, 17, 29, 30, 66, 71},
			CoreLTE: []int{2, 4, 12, 17, 29},
			NR:      []int{2, 5, 66, 77, 260},
		},
		{
			Name:    "T-Mobile",
			LTE:     []int{2, 4, 5, 12, 25, 41, 66, 71},
			CoreLTE: []int{2, 4, 12, 71},
			NR:      []int{2, 25, 38, 41, 71, 258, 260, 261},
		},
	}
}
