package model

import "time"

// Calendar 法定节假日日历，由配置给出当年的 ISO 日期列表
type Calendar struct {
	days map[string]bool
}

// NewCalendar 创建日历，无法解析的日期直接忽略
func NewCalendar(dates []string) Calendar {
	days := make(map[string]bool, len(dates))
	for _, s := range dates {
		if _, err := time.Parse(DateLayout, s); err != nil {
			continue
		}
		days[s] = true
	}
	return Calendar{days: days}
}

// IsHoliday 该日期是否为法定节假日
func (c Calendar) IsHoliday(t time.Time) bool {
	return c.days[DateKey(t)]
}
