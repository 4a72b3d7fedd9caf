package roster

import (
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// assignWeekendAndHolidayNights 第二轮：周五/周末/节假日夜班轮换
// 同一 (日期, 人员) 在本轮里紧接着再按工作日夜班规则兜底评估一次
func (e *Engine) assignWeekendAndHolidayNights() {
	for _, d := range e.month.Days() {
		for _, w := range e.workers {
			e.tryNight(d, w, true)
			e.tryNight(d, w, false)
		}
	}
}

// assignWeekdayNights 第三轮：周一到周四的夜班轮换，整月再扫一遍
func (e *Engine) assignWeekdayNights() {
	for _, d := range e.month.Days() {
		for _, w := range e.workers {
			e.tryNight(d, w, false)
		}
	}
}

// tryNight 尝试给 (日期, 人员) 排夜班
// weekend 为 true 时只处理周五/周末/节假日（当日夜班名额 1），
// 否则只处理普通工作日（名额 2）
func (e *Engine) tryNight(d time.Time, w *model.Worker, weekend bool) {
	special := model.IsFriday(d) || model.IsWeekend(d) || e.calendar.IsHoliday(d)
	if special != weekend {
		return
	}

	slots := e.rules.WeekdayNightSlots
	if weekend {
		slots = e.rules.WeekendNightSlots
	}

	if _, taken := e.grid.Get(d, w.Name); taken {
		return
	}
	if e.hasBlockingPreference(w, d) {
		return
	}
	if e.grid.CountForWorker(w.Name, model.Night) >= e.rules.MaxNightsPerMonth {
		return
	}
	if e.grid.CountOnDate(d, model.Night) >= slots {
		return
	}

	// 次日必须空着且没有任何偏好覆盖，否则休息日写不进去
	next := d.AddDate(0, 0, 1)
	if _, taken := e.grid.Get(next, w.Name); taken {
		return
	}
	if e.directiveFor(w, next) != "" {
		return
	}

	e.grid.SetIfEmpty(d, w.Name, model.Night)
	if e.month.Contains(next) {
		e.grid.SetIfEmpty(next, w.Name, model.FreeAfterNight)
	}
}
