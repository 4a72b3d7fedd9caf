package excel

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// ErrEmptyWorkerTable 去掉表头后没有任何有效人员行
var ErrEmptyWorkerTable = errors.New("worker table is empty")

// 表头列名 → 人员属性的固定映射（列名先做小写与去空白规范化）
var headerFields = map[string]string{
	"name":                     "name",
	"holiday_interval":         "holiday_interval",
	"favorite_schedule_time":   "favorite_schedule_time",
	"last_working_month_night": "last_working_month_night",
	"working_on_night":         "working_on_night",
	"working_on_weekend":       "working_on_weekend",
}

// 可接受的表格容器扩展名
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xlsb": true,
	".xltx": true,
	".xls":  true,
}

// CheckExtension 校验输入文件是否为可识别的表格容器
func CheckExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported spreadsheet extension %q", ext)
	}
	return nil
}

// Reader 人员表读取器
type Reader struct {
	file   *excelize.File
	fileID string
}

// NewReader 创建读取器
func NewReader() *Reader {
	return &Reader{
		fileID: uuid.New().String(),
	}
}

// FileID 本次加载的文件ID，用于日志追踪
func (r *Reader) FileID() string {
	return r.fileID
}

// Load 加载人员表文件
func (r *Reader) Load(path string) error {
	if err := CheckExtension(path); err != nil {
		return err
	}
	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	r.file = file
	return nil
}

// Workers 从第一个工作表解析人员记录
// 第 0 行是表头，按固定映射定位各属性列；姓名为空的行直接丢弃
// 同时返回周末可排人数，供周末均衡轮作为普通参数使用
func (r *Reader) Workers() ([]*model.Worker, int, error) {
	if r.file == nil {
		return nil, 0, errors.New("no file loaded")
	}

	sheets := r.file.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, ErrEmptyWorkerTable
	}

	rows, err := r.file.GetRows(sheets[0])
	if err != nil {
		return nil, 0, err
	}
	if len(rows) <= 1 {
		return nil, 0, ErrEmptyWorkerTable
	}

	// 表头列名 → 列下标
	colIndex := make(map[string]int)
	for i, col := range rows[0] {
		if field, ok := headerFields[normalizeHeader(col)]; ok {
			colIndex[field] = i
		}
	}

	getValue := func(row []string, field string) string {
		if idx, ok := colIndex[field]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	workers := make([]*model.Worker, 0, len(rows)-1)
	weekendWilling := 0

	for _, row := range rows[1:] {
		name := getValue(row, "name")
		if name == "" {
			continue
		}

		w := &model.Worker{
			Name:                 name,
			HolidayIntervals:     getValue(row, "holiday_interval"),
			FavoriteScheduleText: getValue(row, "favorite_schedule_time"),
			WorkedNightLastMonth: parseBool(getValue(row, "last_working_month_night")),
			WorksNights:          parseBool(getValue(row, "working_on_night")),
			WorksWeekends:        parseBool(getValue(row, "working_on_weekend")),
			OrderIndex:           len(workers),
		}
		if w.WorksWeekends {
			weekendWilling++
		}
		workers = append(workers, w)
	}

	if len(workers) == 0 {
		return nil, 0, ErrEmptyWorkerTable
	}

	return workers, weekendWilling, nil
}

// Close 关闭文件
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// normalizeHeader 规范化表头列名：去空白、压成小写
func normalizeHeader(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "")
	return strings.ToLower(name)
}

// parseBool 布尔类单元格：1/true/yes/da 视为真
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "da", "y":
		return true
	}
	return false
}
