package store

// Overview is the wire shape of the market's priceoverview response. Fields
// other than Success are omitted by the remote when the statistic is not
// available, which decodes to an empty string here.
type Overview struct {
	Success     bool   `json:"success"`
	LowestPrice string `json:"lowest_price"`
	MedianPrice string `json:"median_price"`
	Volume      string `json:"volume"`
}
