package roster

import (
	"math/rand"
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/config"
	"github.com/FlaviusPintican/radiology-timetable/internal/model"
	"github.com/FlaviusPintican/radiology-timetable/internal/parser"
)

// Engine 排班规则管线
// 各轮规则严格按固定顺序执行，每轮只写入此前为空的格子
type Engine struct {
	rules    config.RulesConfig
	month    model.Month
	calendar model.Calendar

	// workers 为评估顺序：优先人员在前，其余人员已洗牌；
	// 导出顺序由 Worker.OrderIndex 另行决定
	workers []*model.Worker

	prefs    map[string]map[string]string // 人员名 → 日期字面量 → 指令
	holidays map[string][]parser.DateRange

	// weekendWilling 周末可排人数，由加载阶段算出后作为普通参数传入
	weekendWilling int

	rng  *rand.Rand
	grid *Grid
}

// Options 引擎参数
type Options struct {
	Rules          config.RulesConfig
	Month          model.Month
	Calendar       model.Calendar
	WeekendWilling int
	Rng            *rand.Rand
}

// NewEngine 创建引擎：解析每个人的偏好与年假文本，并确定评估顺序
func NewEngine(workers []*model.Worker, opts Options) *Engine {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		rules:          opts.Rules,
		month:          opts.Month,
		calendar:       opts.Calendar,
		workers:        OrderForEvaluation(workers, opts.Rules.PriorityWorker, rng),
		prefs:          make(map[string]map[string]string, len(workers)),
		holidays:       make(map[string][]parser.DateRange, len(workers)),
		weekendWilling: opts.WeekendWilling,
		rng:            rng,
		grid:           NewGrid(),
	}

	for _, w := range workers {
		e.prefs[w.Name] = parser.ParsePreferences(w.FavoriteScheduleText, opts.Month)
		e.holidays[w.Name] = parser.ParseHolidayIntervals(w.HolidayIntervals)
	}

	return e
}

// OrderForEvaluation 生成规则评估用的人员顺序：
// 优先人员固定在首位，其余人员用注入的随机源洗牌
// 纯函数，不修改入参切片
func OrderForEvaluation(workers []*model.Worker, priority string, rng *rand.Rand) []*model.Worker {
	var pinned *model.Worker
	rest := make([]*model.Worker, 0, len(workers))
	for _, w := range workers {
		if pinned == nil && priority != "" && w.Name == priority {
			pinned = w
			continue
		}
		rest = append(rest, w)
	}

	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	if pinned == nil {
		return rest
	}
	return append([]*model.Worker{pinned}, rest...)
}

// Run 按固定顺序执行全部规则轮，返回填好的排班表
func (e *Engine) Run() *Grid {
	e.applyHolidaysAndPreferences()
	e.assignWeekendAndHolidayNights()
	e.assignWeekdayNights()
	e.balanceWeekendCoverage()
	e.backfillHolidayDayShifts()
	e.allocateOwedFreeDays()

	// 最低保障（单人班次数受限）
	e.fillDayShiftMinimum(model.Morning, e.rules.MinMorning, e.rules.DayShiftWorkerCap)
	e.fillDayShiftMinimum(model.Afternoon, e.rules.MinAfternoon, e.rules.DayShiftWorkerCap)

	e.splitWeekendExempt()

	// 最低保障补齐（不限单人班次数）与封顶填充
	e.fillDayShiftMinimum(model.Morning, e.rules.MinMorning, 0)
	e.fillDayShiftMinimum(model.Afternoon, e.rules.MinAfternoon, 0)
	e.fillDayShiftMaximum(model.Morning, e.rules.MaxMorning)
	e.fillDayShiftMaximum(model.Afternoon, e.rules.MaxAfternoon)

	return e.grid
}

// directiveFor 某人某日期的偏好指令，无则为空串
func (e *Engine) directiveFor(w *model.Worker, d time.Time) string {
	return e.prefs[w.Name][model.DateKey(d)]
}

// hasBlockingPreference 是否屏蔽自动夜班/周末分配：
// 存在任何指令、指令为周末休或"早午均可"哨兵、不上夜班、不排周末，
// 任一条件成立即屏蔽（前两种哨兵与非空判断重叠，按原始规则保留）
func (e *Engine) hasBlockingPreference(w *model.Worker, d time.Time) bool {
	directive := e.directiveFor(w, d)
	if directive != "" {
		return true
	}
	if directive == string(model.FreeWeekendDay) || directive == model.DirectiveMorningOrAfternoon {
		return true
	}
	if !w.WorksNights {
		return true
	}
	if !w.WorksWeekends {
		return true
	}
	return false
}

// weeklyHours 某人在包含 d 的周内的累计工时
func (e *Engine) weeklyHours(w *model.Worker, d time.Time) int {
	return e.grid.WeeklyHours(w.Name, d, e.month, e.rules.HoursPerShift)
}

// ShortfallDates 早/午班未达到最低人数的普通工作日
// 管线不做全局寻优，排不满时照常产出，这里只把缺口暴露给调用方
func (e *Engine) ShortfallDates() []string {
	var dates []string
	for _, d := range e.month.Days() {
		if model.IsWeekend(d) || e.calendar.IsHoliday(d) {
			continue
		}
		if e.grid.CountOnDate(d, model.Morning) < e.rules.MinMorning ||
			e.grid.CountOnDate(d, model.Afternoon) < e.rules.MinAfternoon {
			dates = append(dates, model.DateKey(d))
		}
	}
	return dates
}
