package group

// Interval is the recurrence cadence of a group's goals and the unit at
// which streak evaluation happens.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

var AllIntervals = []Interval{
	IntervalDaily,
	IntervalWeekly,
	IntervalMonthly,
}

func (i Interval) IsValid() bool {
	for _, v := range AllIntervals {
		if i == v {
			return true
		}
	}
	return false
}
