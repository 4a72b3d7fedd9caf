package parser

import (
	"strconv"
	"strings"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// 周内偏移量缺省边界：1-5 即周一到周五（相对每周周日）
const (
	defaultOffsetLow  = 1
	defaultOffsetHigh = 5
)

// ParsePreferences 解析人员偏好文本，返回日期字面量 → 指令的覆盖映射
//
// 每个 token 形如 SPEC(DIRECTIVE)，SPEC 按以下顺序尝试：
//  1. 显式日期范围 START:END（或单个 START）
//  2. 周内偏移模式 "1|3|5" 或 "1-5"，偏移自每周周日起算
//
// 两种形式都解析失败的 token 静默跳过，不中断整次运行；
// 同一日期后出现的 token 覆盖先出现的
func ParsePreferences(raw string, month model.Month) map[string]string {
	out := make(map[string]string)

	for _, tok := range Tokenize(raw) {
		spec, directive, ok := splitToken(tok)
		if !ok {
			continue
		}
		if applyExplicitRange(out, spec, directive) {
			continue
		}
		applyWeekdayPattern(out, spec, directive, month)
	}

	return out
}

// applyExplicitRange 尝试把 SPEC 按显式日期范围解释，成功则写入并返回 true
func applyExplicitRange(out map[string]string, spec, directive string) bool {
	startText, endText, found := strings.Cut(spec, ":")
	if !found {
		endText = startText
	}

	start, ok := parseDate(startText)
	if !ok {
		return false
	}
	end, ok := parseDate(endText)
	if !ok {
		return false
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out[model.DateKey(d)] = directive
	}
	return true
}

// applyWeekdayPattern 把 SPEC 按周内偏移模式解释，作用于每个与目标月相交的周
func applyWeekdayPattern(out map[string]string, spec, directive string, month model.Month) {
	offsets, ok := parseOffsets(spec)
	if !ok {
		return
	}

	for _, weekStart := range month.SundayWeekStarts() {
		for _, off := range offsets {
			d := weekStart.AddDate(0, 0, off)
			// 首周不完整时偏移可能落回上个月，此类日期不得泄漏进结果
			if d.Before(month.First) && d.Month() != month.First.Month() {
				continue
			}
			out[model.DateKey(d)] = directive
		}
	}
}

// parseOffsets 解析偏移列表：含 "-" 时按 "a-b" 区间（缺失边界取 1 / 5），
// 否则按 "a|b|c" 列表（单个整数即单元素列表）
func parseOffsets(spec string) ([]int, bool) {
	if strings.Contains(spec, "-") {
		return parseOffsetRange(spec)
	}

	parts := strings.Split(spec, "|")
	offsets := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		offsets = append(offsets, n)
	}
	return offsets, true
}

// parseOffsetRange "a-b" 闭区间展开
func parseOffsetRange(spec string) ([]int, bool) {
	loText, hiText, _ := strings.Cut(spec, "-")

	lo := defaultOffsetLow
	hi := defaultOffsetHigh
	var err error
	if loText != "" {
		if lo, err = strconv.Atoi(loText); err != nil {
			return nil, false
		}
	}
	if hiText != "" {
		if hi, err = strconv.Atoi(hiText); err != nil {
			return nil, false
		}
	}
	if lo > hi {
		return nil, false
	}

	offsets := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		offsets = append(offsets, n)
	}
	return offsets, true
}
