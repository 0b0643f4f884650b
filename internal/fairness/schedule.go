package fairness

import "time"

// Schedule splits wall-clock time into fixed seed epochs aligned to the Unix epoch.
type Schedule struct {
	Period time.Duration
}

func NewSchedule(period time.Duration) Schedule {
	return Schedule{Period: period}
}

func (s Schedule) seconds() int64 {
	return int64(s.Period / time.Second)
}

// EpochAt returns the epoch number covering t.
func (s Schedule) EpochAt(t time.Time) int64 {
	unix := t.Unix()
	n := unix / s.seconds()
	if unix < 0 && unix%s.seconds() != 0 {
		n--
	}
	return n
}

// Bounds returns the half-open interval [start, end) of epoch n.
func (s Schedule) Bounds(n int64) (time.Time, time.Time) {
	start := time.Unix(n*s.seconds(), 0).UTC()
	return start, start.Add(s.Period)
}
