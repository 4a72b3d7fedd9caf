package roster

import (
	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// backfillHolidayDayShifts 第五轮：每个法定节假日保证至少一个早班和一个午班
// 无人数上限要求，只补到"各有一个"为止
func (e *Engine) backfillHolidayDayShifts() {
	for _, d := range e.month.Days() {
		if !e.calendar.IsHoliday(d) {
			continue
		}

		for _, mark := range []model.ShiftMark{model.Morning, model.Afternoon} {
			if e.grid.CountOnDate(d, mark) > 0 {
				continue
			}
			for _, w := range e.workers {
				if _, taken := e.grid.Get(d, w.Name); taken {
					continue
				}
				if e.hasBlockingPreference(w, d) {
					continue
				}
				e.grid.SetIfEmpty(d, w.Name, mark)
				break
			}
		}
	}
}

// fillDayShiftMinimum 早/午班最低人数保障：
// 普通工作日上把指定班次补到 minCount，受周工时上限约束；
// perWorkerCap > 0 时另受单人班次数上限约束（第 7/8 轮），为 0 则不限（第 10 轮）
//
// 只对排周末的人员生效——该口径看似与意图相反（不排周末的人另由对半
// 分配轮处理），但为保持与既有排班结果一致而原样保留
func (e *Engine) fillDayShiftMinimum(mark model.ShiftMark, minCount, perWorkerCap int) {
	for _, d := range e.month.Days() {
		if model.IsWeekend(d) || e.calendar.IsHoliday(d) {
			continue
		}
		for _, w := range e.workers {
			if e.grid.CountOnDate(d, mark) >= minCount {
				break
			}
			if !w.WorksWeekends {
				continue
			}
			if _, taken := e.grid.Get(d, w.Name); taken {
				continue
			}
			if e.weeklyHours(w, d) >= e.rules.MaxHoursPerWeek {
				continue
			}
			if perWorkerCap > 0 && e.grid.CountForWorker(w.Name, mark) >= perWorkerCap {
				continue
			}
			e.grid.SetIfEmpty(d, w.Name, mark)
		}
	}
}

// fillDayShiftMaximum 第 11 轮：把早/午班填到人数上限为止，仍受周工时约束
func (e *Engine) fillDayShiftMaximum(mark model.ShiftMark, maxCount int) {
	for _, d := range e.month.Days() {
		if model.IsWeekend(d) || e.calendar.IsHoliday(d) {
			continue
		}
		for _, w := range e.workers {
			if e.grid.CountOnDate(d, mark) >= maxCount {
				break
			}
			if !w.WorksWeekends {
				continue
			}
			if _, taken := e.grid.Get(d, w.Name); taken {
				continue
			}
			if e.weeklyHours(w, d) >= e.rules.MaxHoursPerWeek {
				continue
			}
			e.grid.SetIfEmpty(d, w.Name, mark)
		}
	}
}

// splitWeekendExempt 第九轮：不排周末的人员在普通工作日上
// 以等概率随机分到早班或午班
func (e *Engine) splitWeekendExempt() {
	for _, d := range e.month.Days() {
		if model.IsWeekend(d) || e.calendar.IsHoliday(d) {
			continue
		}
		for _, w := range e.workers {
			if w.WorksWeekends {
				continue
			}
			if _, taken := e.grid.Get(d, w.Name); taken {
				continue
			}
			if e.rng.Intn(2) == 0 {
				e.grid.SetIfEmpty(d, w.Name, model.Morning)
			} else {
				e.grid.SetIfEmpty(d, w.Name, model.Afternoon)
			}
		}
	}
}
