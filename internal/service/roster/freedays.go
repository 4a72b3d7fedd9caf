package roster

import (
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// allocateOwedFreeDays 第六轮：按已排的节假日/周末/周五班次折算应补休天数，
// 在普通日期上逐日发放，单日补休人数不超过上限
func (e *Engine) allocateOwedFreeDays() {
	owed := make(map[string]int, len(e.workers))
	for _, w := range e.workers {
		owed[w.Name] = e.owedFreeDays(w.Name)
	}

	for _, d := range e.month.Days() {
		if model.IsWeekend(d) {
			continue
		}
		for _, w := range e.workers {
			if owed[w.Name] <= 0 {
				continue
			}
			if e.grid.CountOnDate(d, model.FreeDay) >= e.rules.MaxFreeDaysPerDate {
				continue
			}
			if e.grid.SetIfEmpty(d, w.Name, model.FreeDay) {
				owed[w.Name]--
			}
		}
	}
}

// owedFreeDays 应补休天数的加权统计：
//
//	节假日周末任意班           2
//	节假日周五夜班             2
//	节假日周五白班             1
//	节假日普通工作日白班       1
//	周六夜班                   2
//	周末白班                   1
//	普通周五/周日夜班          1
func (e *Engine) owedFreeDays(name string) int {
	total := 0
	for _, d := range e.month.Days() {
		mark, ok := e.grid.Get(d, name)
		if !ok {
			continue
		}

		night := mark == model.Night
		day := mark == model.Morning || mark == model.Afternoon
		if !night && !day {
			continue
		}

		holiday := e.calendar.IsHoliday(d)
		weekend := model.IsWeekend(d)
		friday := d.Weekday() == time.Friday
		sunday := d.Weekday() == time.Sunday
		saturday := d.Weekday() == time.Saturday

		switch {
		case holiday && weekend:
			total += 2
		case holiday && friday && night:
			total += 2
		case holiday && friday && day:
			total++
		case holiday && day:
			total++
		case saturday && night:
			total += 2
		case weekend && day:
			total++
		case (friday || sunday) && night:
			total++
		}
	}
	return total
}
