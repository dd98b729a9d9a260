package xapiclient

import (
	"fmt"
	"strings"
	"time"
)

type DayRange int

const (
	DayRangeToday DayRange = iota
	DayRangeYesterday
	DayRangeLast7Days
)

const timeFormat = "2006-01-02T15:04:05Z"

// TimeWindow returns the [start, start+24h) UTC window for a day range,
// anchored at midnight of the target day relative to now.
func TimeWindow(dayRange DayRange, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	switch dayRange {
	case DayRangeToday:
	case DayRangeYesterday:
		start = start.Add(-24 * time.Hour)
		end = end.Add(-24 * time.Hour)
	case DayRangeLast7Days:
		start = start.Add(-7 * 24 * time.Hour)
		end = end.Add(-7 * 24 * time.Hour)
	default:
		panic(fmt.Sprintf("unknown day range: %d", dayRange))
	}
	return start, end
}

// ParseDayRange maps the query values accepted by callers onto DayRange.
func ParseDayRange(value string) (DayRange, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "today":
		return DayRangeToday, nil
	case "yesterday":
		return DayRangeYesterday, nil
	case "last7days":
		return DayRangeLast7Days, nil
	}
	return 0, fmt.Errorf("unknown day range %q, expected today, yesterday or last7days", value)
}

// JoinIDs builds the comma separated ids parameter for batch lookups.
func JoinIDs(ids []string) string {
	return strings.Join(ids, ",")
}
