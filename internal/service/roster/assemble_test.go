package roster

import (
	"testing"
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// TestAssembleOrderAndColumns 测试行按输入顺序、列标签与周末标记
func TestAssembleOrderAndColumns(t *testing.T) {
	month := model.MonthOf(2023, time.June)
	calendar := model.NewCalendar(nil)
	workers := []*model.Worker{
		{Name: "B", OrderIndex: 1},
		{Name: "A", OrderIndex: 0},
		{Name: "C", OrderIndex: 2},
	}

	grid := NewGrid()
	table := Assemble(grid, workers, month, calendar)

	if len(table.Columns) != 30 {
		t.Fatalf("列数 = %d, want 30", len(table.Columns))
	}
	if table.Columns[0].Label != "1/6" {
		t.Errorf("首列标签 = %q, want 1/6", table.Columns[0].Label)
	}
	if table.Columns[29].Label != "30/6" {
		t.Errorf("末列标签 = %q, want 30/6", table.Columns[29].Label)
	}

	// 6月10日是周六，6月12日是周一
	if !table.Columns[9].Weekend {
		t.Error("6/10 应标记为周末列")
	}
	if table.Columns[11].Weekend {
		t.Error("6/12 不应标记为周末列")
	}

	want := []string{"A", "B", "C"}
	for i, name := range want {
		if table.Rows[i].Name != name {
			t.Errorf("Rows[%d] = %s, want %s", i, table.Rows[i].Name, name)
		}
	}
}

// TestAssembleRenderMarks 测试单元格渲染：休息类标记留空，其余写字面量
func TestAssembleRenderMarks(t *testing.T) {
	month := model.MonthOf(2023, time.June)
	calendar := model.NewCalendar([]string{"2023-06-13"})
	workers := []*model.Worker{{Name: "A", OrderIndex: 0}}

	grid := NewGrid()
	grid.SetIfEmpty(day("2023-06-05"), "A", model.Night)
	grid.SetIfEmpty(day("2023-06-06"), "A", model.FreeAfterNight)
	grid.SetIfEmpty(day("2023-06-07"), "A", model.FreeNationalDay)
	grid.SetIfEmpty(day("2023-06-08"), "A", model.FreeDay)
	grid.SetIfEmpty(day("2023-06-13"), "A", model.FreeDay) // 节假日上的补休
	grid.SetIfEmpty(day("2023-06-14"), "A", model.Holiday)

	table := Assemble(grid, workers, month, calendar)
	cells := table.Rows[0].Cells

	tests := []struct {
		dayIndex int
		want     string
	}{
		{4, "N"},   // 夜班照常打印
		{5, ""},    // 夜班次日休息留空
		{6, ""},    // 法定休留空
		{7, "L"},   // 普通补休照常打印
		{12, ""},   // 节假日上的补休留空
		{13, "CO"}, // 年假照常打印
		{0, ""},    // 无标记留空
	}
	for _, tt := range tests {
		if cells[tt.dayIndex] != tt.want {
			t.Errorf("cells[%d] = %q, want %q", tt.dayIndex, cells[tt.dayIndex], tt.want)
		}
	}
}

// TestAssembleRoundTrip 测试渲染后的非空单元格都能解析回已定义标记
func TestAssembleRoundTrip(t *testing.T) {
	workers := make([]*model.Worker, 0, 6)
	for i, name := range []string{"A", "B", "C", "D", "E", "F"} {
		workers = append(workers, newTestWorker(name, i))
	}
	e := newTestEngine(workers, 17, []string{"2023-06-13"})
	grid := e.Run()

	table := Assemble(grid, workers, e.month, e.calendar)
	for _, row := range table.Rows {
		for i, cell := range row.Cells {
			if cell == "" {
				continue
			}
			if _, ok := model.ParseShiftMark(cell); !ok {
				t.Errorf("%s 第 %d 列出现未定义标记 %q", row.Name, i, cell)
			}
		}
	}
}
