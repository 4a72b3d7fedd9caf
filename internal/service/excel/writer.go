package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FlaviusPintican/radiology-timetable/internal/service/roster"
)

// SheetName 排班结果工作表名
const SheetName = "Timetable"

// Writer 排班结果导出器
type Writer struct{}

// NewWriter 创建导出器
func NewWriter() *Writer {
	return &Writer{}
}

// Write 把排班表写成工作簿：
// 第 1 行是"日/月"列标签，A 列是人员姓名（原始输入顺序），周末列整列高亮
func (w *Writer) Write(table *roster.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	weekendStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFF2CC"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	// 表头
	for i, col := range table.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(SheetName, cell, col.Label)
	}
	f.SetRowStyle(SheetName, 1, 1, headerStyle)

	// 数据行
	for r, row := range table.Rows {
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", r+2), row.Name)
		for c, value := range row.Cells {
			if value == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+2, r+2)
			f.SetCellValue(SheetName, cell, value)
		}
	}

	// 周末列高亮
	for i, col := range table.Columns {
		if !col.Weekend || len(table.Rows) == 0 {
			continue
		}
		top, _ := excelize.CoordinatesToCellName(i+2, 2)
		bottom, _ := excelize.CoordinatesToCellName(i+2, len(table.Rows)+1)
		f.SetCellStyle(SheetName, top, bottom, weekendStyle)
	}

	f.SetColWidth(SheetName, "A", "A", 24)
	if len(table.Columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(table.Columns) + 1)
		f.SetColWidth(SheetName, "B", last, 6)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}
