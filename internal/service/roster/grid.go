package roster

import (
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// Grid 月度排班表：日期字面量 → 人员名 → 标记
// 规则管线是唯一写入方，每个格子只允许被写入一次
// （第一轮里年假覆盖休息标记是唯一例外）
type Grid struct {
	cells map[string]map[string]model.ShiftMark
}

// NewGrid 创建空表
func NewGrid() *Grid {
	return &Grid{cells: make(map[string]map[string]model.ShiftMark)}
}

// Get 读取格子
func (g *Grid) Get(date time.Time, name string) (model.ShiftMark, bool) {
	mark, ok := g.cells[model.DateKey(date)][name]
	return mark, ok
}

// Set 无条件写入，仅第一轮的年假覆盖使用
func (g *Grid) Set(date time.Time, name string, mark model.ShiftMark) {
	key := model.DateKey(date)
	if g.cells[key] == nil {
		g.cells[key] = make(map[string]model.ShiftMark)
	}
	g.cells[key][name] = mark
}

// SetIfEmpty 格子为空时写入，返回是否写入成功
func (g *Grid) SetIfEmpty(date time.Time, name string, mark model.ShiftMark) bool {
	key := model.DateKey(date)
	if _, exists := g.cells[key][name]; exists {
		return false
	}
	if g.cells[key] == nil {
		g.cells[key] = make(map[string]model.ShiftMark)
	}
	g.cells[key][name] = mark
	return true
}

// CountOnDate 某日期上持有指定标记的人数
func (g *Grid) CountOnDate(date time.Time, mark model.ShiftMark) int {
	count := 0
	for _, m := range g.cells[model.DateKey(date)] {
		if m == mark {
			count++
		}
	}
	return count
}

// CountForWorker 某人在整个表上持有指定标记的次数
func (g *Grid) CountForWorker(name string, mark model.ShiftMark) int {
	count := 0
	for _, byName := range g.cells {
		if byName[name] == mark {
			count++
		}
	}
	return count
}

// WeeklyHours 某人在包含 at 的 ISO 周内的累计工时
// 周从周一起算，首周按目标月 1 号裁剪起点
func (g *Grid) WeeklyHours(name string, at time.Time, month model.Month, hoursPerShift int) int {
	start := model.WeekMonday(at)
	end := start.AddDate(0, 0, 6)
	if start.Before(month.First) {
		start = month.First
	}

	total := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if mark, ok := g.Get(d, name); ok {
			total += mark.Hours(hoursPerShift)
		}
	}
	return total
}
