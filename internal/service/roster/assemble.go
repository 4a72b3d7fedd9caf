package roster

import (
	"fmt"
	"sort"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// Column 导出表的一列（一个日期）
type Column struct {
	Label   string // "日/月"，如 "15/6"
	Weekend bool   // 周末列，导出时高亮
}

// Row 导出表的一行（一名人员）
type Row struct {
	Name  string
	Cells []string
}

// Table 最终排班表，行按输入表原始顺序排列
type Table struct {
	Columns []Column
	Rows    []Row
}

// Assemble 把排班表整理为导出结构：
// 人员恢复 OrderIndex 升序（与规则评估用的优先+洗牌顺序无关），
// 列按日期升序；休息标记 "-"、"LN" 以及节假日上的补休 "L" 渲染为空格
func Assemble(grid *Grid, workers []*model.Worker, month model.Month, calendar model.Calendar) *Table {
	ordered := make([]*model.Worker, len(workers))
	copy(ordered, workers)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	days := month.Days()
	columns := make([]Column, 0, len(days))
	for _, d := range days {
		columns = append(columns, Column{
			Label:   fmt.Sprintf("%d/%d", d.Day(), int(d.Month())),
			Weekend: model.IsWeekend(d),
		})
	}

	rows := make([]Row, 0, len(ordered))
	for _, w := range ordered {
		cells := make([]string, 0, len(days))
		for _, d := range days {
			mark, ok := grid.Get(d, w.Name)
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, renderMark(mark, calendar.IsHoliday(d)))
		}
		rows = append(rows, Row{Name: w.Name, Cells: cells})
	}

	return &Table{Columns: columns, Rows: rows}
}

// renderMark 单元格渲染：三类"无需打印"的标记留空，其余写字面量
func renderMark(mark model.ShiftMark, publicHoliday bool) string {
	switch {
	case mark == model.FreeAfterNight, mark == model.FreeNationalDay:
		return ""
	case mark == model.FreeDay && publicHoliday:
		return ""
	default:
		return string(mark)
	}
}
