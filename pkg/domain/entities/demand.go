package entities

import "time"

// DemandRecord is one cell of the dense daily demand grid: the quantity
// of a material demanded on a date. Size is zero on days without demand
// so consumers can distinguish observed zeros from missing data.
type DemandRecord struct {
	Date     time.Time
	Material MaterialID
	Size     int64
}
