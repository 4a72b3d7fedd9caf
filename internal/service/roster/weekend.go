package roster

import (
	"math"
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// 每个周末日提供的排班槽位权重：周五 1、周六 4、周日 3
const (
	fridaySlots   = 1
	saturdaySlots = 4
	sundaySlots   = 3
)

// balanceWeekendCoverage 第四轮：周末覆盖三档均衡
// 以最低、计算出的中间档、最高三个工时目标各扫一遍周五/周末日期
func (e *Engine) balanceWeekendCoverage() {
	tiers := []int{
		e.rules.WeekendMinHours,
		e.mediumWeekendHours(),
		e.rules.WeekendMaxHours,
	}
	for _, target := range tiers {
		e.fillWeekendTier(target)
	}
}

// mediumWeekendHours 中间档工时 = round(月内周末槽位总数 / 周末可排人数) 个班次，
// 折算成小时后收拢到 [最低, 最高] 区间
func (e *Engine) mediumWeekendHours() int {
	slots := 0
	for _, d := range e.month.Days() {
		switch d.Weekday() {
		case time.Friday:
			slots += fridaySlots
		case time.Saturday:
			slots += saturdaySlots
		case time.Sunday:
			slots += sundaySlots
		}
	}

	if e.weekendWilling == 0 {
		return e.rules.WeekendMinHours
	}

	turns := int(math.Round(float64(slots) / float64(e.weekendWilling)))
	hours := turns * e.rules.HoursPerShift
	if hours < e.rules.WeekendMinHours {
		return e.rules.WeekendMinHours
	}
	if hours > e.rules.WeekendMaxHours {
		return e.rules.WeekendMaxHours
	}
	return hours
}

// fillWeekendTier 单档填充：每个周五/周末日期至多补一个早班和一个午班
func (e *Engine) fillWeekendTier(targetHours int) {
	maxTurns := targetHours / e.rules.HoursPerShift

	for _, d := range e.month.Days() {
		if !model.IsFriday(d) && !model.IsWeekend(d) {
			continue
		}
		for _, w := range e.workers {
			if _, taken := e.grid.Get(d, w.Name); taken {
				continue
			}
			if e.hasBlockingPreference(w, d) {
				continue
			}
			if e.weekendTurns(w.Name) >= maxTurns {
				continue
			}

			if e.grid.CountOnDate(d, model.Morning) == 0 {
				e.grid.SetIfEmpty(d, w.Name, model.Morning)
				continue
			}
			if e.grid.CountOnDate(d, model.Afternoon) == 0 {
				e.grid.SetIfEmpty(d, w.Name, model.Afternoon)
				continue
			}
			// 当日两个槽位都已有人，换下一天
			break
		}
	}
}

// weekendTurns 某人已累计的周末班次数：
// 周六夜班记 2，周六白班记 1，周日任意班记 1，周五夜班记 1
func (e *Engine) weekendTurns(name string) int {
	turns := 0
	for _, d := range e.month.Days() {
		mark, ok := e.grid.Get(d, name)
		if !ok {
			continue
		}
		day := mark == model.Morning || mark == model.Afternoon

		switch d.Weekday() {
		case time.Saturday:
			if mark == model.Night {
				turns += 2
			} else if day {
				turns++
			}
		case time.Sunday:
			if mark == model.Night || day {
				turns++
			}
		case time.Friday:
			if mark == model.Night {
				turns++
			}
		}
	}
	return turns
}
