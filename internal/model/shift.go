package model

// ShiftMark 排班格子的结果标记
// 取值即导出时写入单元格的字面量，与历史排班表保持兼容
type ShiftMark string

const (
	Morning         ShiftMark = "D"  // 早班
	Afternoon       ShiftMark = "DM" // 午班
	Night           ShiftMark = "N"  // 夜班
	FreeAfterNight  ShiftMark = "-"  // 夜班后的强制休息日
	FreeDay         ShiftMark = "L"  // 补休
	FreeWeekendDay  ShiftMark = "LW" // 周末休息
	FreeNationalDay ShiftMark = "LN" // 法定节假日休息
	Holiday         ShiftMark = "CO" // 带薪年假
)

// DirectiveMorningOrAfternoon 偏好文本中的"早班或午班均可"哨兵值
// 不会写入表格，仅用于屏蔽自动夜班/周末分配
const DirectiveMorningOrAfternoon = "D|DM"

// AllShiftMarks 全部合法标记，按导出兼容性固定顺序
var AllShiftMarks = []ShiftMark{
	Morning, Afternoon, Night, FreeAfterNight,
	FreeDay, FreeWeekendDay, FreeNationalDay, Holiday,
}

// ParseShiftMark 将单元格字面量解析为标记
func ParseShiftMark(s string) (ShiftMark, bool) {
	for _, m := range AllShiftMarks {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// DirectiveMark 将偏好文本中的指令解析为可直接写入的标记
// 仅 L/D/DM/N/LN 是具体指令，其余值只起屏蔽作用
func DirectiveMark(s string) (ShiftMark, bool) {
	switch ShiftMark(s) {
	case FreeDay, Morning, Afternoon, Night, FreeNationalDay:
		return ShiftMark(s), true
	}
	return "", false
}

// Hours 该标记在周工时统计中的计费小时数
// 夜班后的休息日按名义班次计费，其余休息类标记为 0
func (m ShiftMark) Hours(perShift int) int {
	switch m {
	case Morning, Afternoon, Night, FreeAfterNight:
		return perShift
	}
	return 0
}
