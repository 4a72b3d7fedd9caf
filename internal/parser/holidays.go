package parser

import (
	"strings"
	"time"
)

// DateRange 闭区间日期范围
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains 日期是否落在范围内
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParseHolidayIntervals 解析年假文本，每个 token 形如 START:END
// 无法解析的 token 静默跳过
func ParseHolidayIntervals(raw string) []DateRange {
	var ranges []DateRange

	for _, tok := range Tokenize(raw) {
		startText, endText, found := strings.Cut(tok, ":")
		if !found {
			continue
		}
		start, ok := parseDate(startText)
		if !ok {
			continue
		}
		end, ok := parseDate(endText)
		if !ok || end.Before(start) {
			continue
		}
		ranges = append(ranges, DateRange{Start: start, End: end})
	}

	return ranges
}

// OnHoliday 日期是否落在任一年假范围内
func OnHoliday(ranges []DateRange, t time.Time) bool {
	for _, r := range ranges {
		if r.Contains(t) {
			return true
		}
	}
	return false
}
