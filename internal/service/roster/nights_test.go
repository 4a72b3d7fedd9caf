package roster

import (
	"testing"
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// TestWeekendNightSingleSlot 测试周五/周末/节假日夜班单日只排一人
func TestWeekendNightSingleSlot(t *testing.T) {
	workers := []*model.Worker{
		newTestWorker("A", 0),
		newTestWorker("B", 1),
		newTestWorker("C", 2),
	}
	e := newTestEngine(workers, 5, []string{"2023-06-14"})
	e.assignWeekendAndHolidayNights()

	for _, d := range e.month.Days() {
		special := model.IsFriday(d) || model.IsWeekend(d) || e.calendar.IsHoliday(d)
		nights := e.grid.CountOnDate(d, model.Night)
		if special && nights > 1 {
			t.Errorf("%s 夜班 %d 人, 上限 1", model.DateKey(d), nights)
		}
		if !special && nights > 2 {
			t.Errorf("%s 夜班 %d 人, 上限 2", model.DateKey(d), nights)
		}
	}
}

// TestNightRotationCaps 测试单人月度夜班上限
func TestNightRotationCaps(t *testing.T) {
	workers := []*model.Worker{newTestWorker("A", 0), newTestWorker("B", 1)}
	e := newTestEngine(workers, 5, nil)
	e.assignWeekendAndHolidayNights()
	e.assignWeekdayNights()

	for _, w := range workers {
		if n := e.grid.CountForWorker(w.Name, model.Night); n > e.rules.MaxNightsPerMonth {
			t.Errorf("%s 夜班 %d 次, 上限 %d", w.Name, n, e.rules.MaxNightsPerMonth)
		}
	}
}

// TestNightWritesRestDay 测试夜班次日写入休息标记且不被后续轮覆盖
func TestNightWritesRestDay(t *testing.T) {
	e := newTestEngine([]*model.Worker{newTestWorker("A", 0)}, 5, nil)
	grid := e.Run()
	month := model.MonthOf(2023, time.June)

	found := false
	for _, d := range month.Days() {
		mark, _ := grid.Get(d, "A")
		if mark != model.Night {
			continue
		}
		found = true
		next := d.AddDate(0, 0, 1)
		if !month.Contains(next) {
			continue
		}
		if nextMark, _ := grid.Get(next, "A"); nextMark != model.FreeAfterNight {
			t.Errorf("%s 夜班次日 = %q, want -", model.DateKey(d), nextMark)
		}
	}
	if !found {
		t.Error("夜班轮换应至少排出一个夜班")
	}
}

// TestNightBlockedByFlags 测试不上夜班/不排周末的人不参与夜班轮换
func TestNightBlockedByFlags(t *testing.T) {
	noNights := newTestWorker("A", 0)
	noNights.WorksNights = false
	noWeekend := newTestWorker("B", 1)
	noWeekend.WorksWeekends = false

	e := newTestEngine([]*model.Worker{noNights, noWeekend}, 5, nil)
	e.assignWeekendAndHolidayNights()
	e.assignWeekdayNights()

	for _, name := range []string{"A", "B"} {
		if n := e.grid.CountForWorker(name, model.Night); n != 0 {
			t.Errorf("%s 不应被排夜班, got %d", name, n)
		}
	}
}

// TestNightBlockedByNextDay 测试当日有偏好或次日有偏好覆盖时不排夜班
func TestNightBlockedByNextDay(t *testing.T) {
	w := newTestWorker("A", 0)
	// 每个周日+3（周三）有偏好：周三被当日偏好屏蔽，周二被次日偏好堵住
	w.FavoriteScheduleText = "3(D)"

	e := newTestEngine([]*model.Worker{w}, 5, nil)
	e.assignWeekendAndHolidayNights()
	e.assignWeekdayNights()

	for _, d := range e.month.Days() {
		wd := d.Weekday()
		if wd != time.Tuesday && wd != time.Wednesday {
			continue
		}
		if mark, _ := e.grid.Get(d, "A"); mark == model.Night {
			t.Errorf("%s (%s) 不应被排夜班", model.DateKey(d), wd)
		}
	}
}
