package domain

import "time"

type Granularity string

const (
	GranularityDaily     Granularity = "daily"
	GranularityWeekly    Granularity = "weekly"
	Granularity10Days    Granularity = "10_days"
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
	Granularity30Days    Granularity = "30_days"
	GranularityHalfYear  Granularity = "half_year"
	GranularityCustom    Granularity = "custom"
)

// TimeWindow is a resolved reporting window covering [Start, End). Start is
// never after End.
type TimeWindow struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Granularity Granularity `json:"granularity"`
}

// Contains reports whether t falls inside [Start, End).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
