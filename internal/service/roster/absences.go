package roster

import (
	"github.com/FlaviusPintican/radiology-timetable/internal/model"
	"github.com/FlaviusPintican/radiology-timetable/internal/parser"
)

// applyHolidaysAndPreferences 第一轮：强制休息、年假与偏好指令
//
// 对每个 (日期, 人员)：
//  1. 上月最后一天上过夜班的人在 1 号写入休息标记
//  2. 日期落在年假范围内时写入年假——该写入不走只写一次约束，
//     可以覆盖同轮刚写下的 1 号休息标记
//  3. 偏好给出具体指令且格子仍为空时写入；夜班指令同时在次日
//     写入休息标记（次日为空时）
func (e *Engine) applyHolidaysAndPreferences() {
	for _, d := range e.month.Days() {
		for _, w := range e.workers {
			if w.WorkedNightLastMonth && d.Equal(e.month.First) {
				e.grid.SetIfEmpty(d, w.Name, model.FreeAfterNight)
			}

			if parser.OnHoliday(e.holidays[w.Name], d) {
				e.grid.Set(d, w.Name, model.Holiday)
			}

			mark, ok := model.DirectiveMark(e.directiveFor(w, d))
			if !ok {
				continue
			}
			if !e.grid.SetIfEmpty(d, w.Name, mark) {
				continue
			}
			if mark == model.Night {
				e.grid.SetIfEmpty(d.AddDate(0, 0, 1), w.Name, model.FreeAfterNight)
			}
		}
	}
}
