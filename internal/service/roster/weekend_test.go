package roster

import (
	"testing"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// 2023年6月的周末槽位：周五 5 天 ×1 + 周六 4 天 ×4 + 周日 4 天 ×3 = 33
const june2023WeekendSlots = 33

// TestMediumWeekendHours 测试中间档工时计算与区间收拢
func TestMediumWeekendHours(t *testing.T) {
	tests := []struct {
		name    string
		willing int
		want    int
	}{
		{"人少上限收拢", 3, 24},  // round(33/3)=11 班 → 66h → 收拢 24
		{"正常区间", 11, 18},    // round(33/11)=3 班 → 18h
		{"人多下限收拢", 33, 12}, // round(33/33)=1 班 → 6h → 收拢 12
		{"无人可排", 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workers := []*model.Worker{newTestWorker("A", 0)}
			e := newTestEngine(workers, 1, nil)
			e.weekendWilling = tt.willing

			if got := e.mediumWeekendHours(); got != tt.want {
				t.Errorf("mediumWeekendHours() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestWeekendTierSingleSlot 测试均衡轮每个周末日至多一个早班一个午班
func TestWeekendTierSingleSlot(t *testing.T) {
	workers := []*model.Worker{
		newTestWorker("A", 0),
		newTestWorker("B", 1),
		newTestWorker("C", 2),
		newTestWorker("D", 3),
	}
	e := newTestEngine(workers, 11, nil)
	e.balanceWeekendCoverage()

	for _, d := range e.month.Days() {
		if !model.IsFriday(d) && !model.IsWeekend(d) {
			continue
		}
		if n := e.grid.CountOnDate(d, model.Morning); n > 1 {
			t.Errorf("%s 早班 %d 人, 上限 1", model.DateKey(d), n)
		}
		if n := e.grid.CountOnDate(d, model.Afternoon); n > 1 {
			t.Errorf("%s 午班 %d 人, 上限 1", model.DateKey(d), n)
		}
	}
}

// TestWeekendTurns 测试周末班次加权统计
func TestWeekendTurns(t *testing.T) {
	e := newTestEngine([]*model.Worker{newTestWorker("A", 0)}, 1, nil)

	e.grid.SetIfEmpty(day("2023-06-10"), "A", model.Night)     // 周六夜班 = 2
	e.grid.SetIfEmpty(day("2023-06-17"), "A", model.Morning)   // 周六白班 = 1
	e.grid.SetIfEmpty(day("2023-06-11"), "A", model.Night)     // 周日夜班 = 1
	e.grid.SetIfEmpty(day("2023-06-18"), "A", model.Afternoon) // 周日白班 = 1
	e.grid.SetIfEmpty(day("2023-06-09"), "A", model.Night)     // 周五夜班 = 1
	e.grid.SetIfEmpty(day("2023-06-16"), "A", model.Morning)   // 周五白班 = 0
	e.grid.SetIfEmpty(day("2023-06-12"), "A", model.Night)     // 周一夜班 = 0

	if got := e.weekendTurns("A"); got != 6 {
		t.Errorf("weekendTurns = %d, want 6", got)
	}
}

// TestWeekendTierBlocked 测试被屏蔽人员不参与周末均衡
func TestWeekendTierBlocked(t *testing.T) {
	w := newTestWorker("A", 0)
	w.WorksWeekends = false

	e := newTestEngine([]*model.Worker{w}, 1, nil)
	e.balanceWeekendCoverage()

	for _, d := range e.month.Days() {
		if mark, ok := e.grid.Get(d, "A"); ok {
			t.Errorf("%s 不应有标记, got %q", model.DateKey(d), mark)
		}
	}
}
