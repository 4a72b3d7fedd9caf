package model

// Worker 排班人员记录
// OrderIndex 为输入表中的原始行序，只用于导出排序，不参与任何规则判定
type Worker struct {
	Name                 string
	HolidayIntervals     string
	FavoriteScheduleText string
	WorkedNightLastMonth bool
	WorksNights          bool
	WorksWeekends        bool
	OrderIndex           int
}
