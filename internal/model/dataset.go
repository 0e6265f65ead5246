package model

// UsageDataset is the JSON shape of an on-disk usage series
// (e.g. examples/datasets/*.json).
type UsageDataset struct {
	Name  string    `json:"name"`
	Unit  string    `json:"unit,omitempty"`
	Usage []float64 `json:"usage"`
}
