package model

import "time"

// DateLayout 全系统统一的日期字面量格式
const DateLayout = "2006-01-02"

// Month 目标月份的工作区间，First/Last 均为当日零点，闭区间
type Month struct {
	First time.Time
	Last  time.Time
}

// TargetMonth 由"今天"推导目标月份：
// 已过当月 1 号则排下个月，否则排当月
func TargetMonth(today time.Time) Month {
	y, m, d := today.Date()
	if d > 1 {
		m++
	}
	first := time.Date(y, m, 1, 0, 0, 0, 0, today.Location())
	return Month{First: first, Last: first.AddDate(0, 1, -1)}
}

// MonthOf 指定年月的工作区间（UTC，测试与固定场景使用）
func MonthOf(year int, month time.Month) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{First: first, Last: first.AddDate(0, 1, -1)}
}

// Days 区间内全部日期，升序
func (m Month) Days() []time.Time {
	days := make([]time.Time, 0, 31)
	for d := m.First; !d.After(m.Last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains 日期是否落在区间内
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.First) && !t.After(m.Last)
}

// SundayWeekStarts 与目标月份相交的每个日历周的周日
// 首个周日可能落在上个月（首周不完整时）
func (m Month) SundayWeekStarts() []time.Time {
	ws := m.First.AddDate(0, 0, -int(m.First.Weekday()))
	starts := make([]time.Time, 0, 6)
	for ; !ws.After(m.Last); ws = ws.AddDate(0, 0, 7) {
		starts = append(starts, ws)
	}
	return starts
}

// DateKey 日期的 ISO 字面量，作为表格与覆盖映射的键
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekMonday 包含 t 的 ISO 周的周一
func WeekMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// IsWeekend 周六或周日
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsFriday 周五
func IsFriday(t time.Time) bool {
	return t.Weekday() == time.Friday
}
