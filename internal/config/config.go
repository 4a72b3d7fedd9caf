package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Files    FilesConfig    `toml:"files"`
	Rules    RulesConfig    `toml:"rules"`
	Calendar CalendarConfig `toml:"calendar"`
}

// FilesConfig 输入输出文件位置
// 仅这两项允许环境变量覆盖
type FilesConfig struct {
	InputFile  string `toml:"input_file" env:"TIMETABLE_INPUT_FILE"`
	OutputFile string `toml:"output_file" env:"TIMETABLE_OUTPUT_FILE"`
}

// RulesConfig 排班规则常量
type RulesConfig struct {
	// PriorityWorker 规则评估时始终排在首位的人员姓名，可为空
	PriorityWorker string `toml:"priority_worker"`

	MaxNightsPerMonth int `toml:"max_nights_per_month" validate:"min=1"`
	WeekendNightSlots int `toml:"weekend_night_slots" validate:"min=1"`
	WeekdayNightSlots int `toml:"weekday_night_slots" validate:"min=1"`

	MinMorning   int `toml:"min_morning" validate:"min=1"`
	MinAfternoon int `toml:"min_afternoon" validate:"min=1"`
	MaxMorning   int `toml:"max_morning" validate:"gtefield=MinMorning"`
	MaxAfternoon int `toml:"max_afternoon" validate:"gtefield=MinAfternoon"`

	// DayShiftWorkerCap 最低保障轮（第一轮）里单人早/午班次数上限
	DayShiftWorkerCap  int `toml:"day_shift_worker_cap" validate:"min=1"`
	MaxFreeDaysPerDate int `toml:"max_free_days_per_date" validate:"min=1"`

	HoursPerShift   int `toml:"hours_per_shift" validate:"min=1"`
	MaxHoursPerWeek int `toml:"max_hours_per_week" validate:"gtefield=HoursPerShift"`

	WeekendMinHours int `toml:"weekend_min_hours" validate:"min=1"`
	WeekendMaxHours int `toml:"weekend_max_hours" validate:"gtefield=WeekendMinHours"`
}

// CalendarConfig 法定节假日配置
type CalendarConfig struct {
	PublicHolidays []string `toml:"public_holidays"`
}

// DefaultConfig 默认配置
// 节假日默认表为罗马尼亚 2026 年法定假日
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Files: FilesConfig{
			InputFile:  "workers.xlsx",
			OutputFile: "roster.xlsx",
		},
		Rules: RulesConfig{
			MaxNightsPerMonth:  4,
			WeekendNightSlots:  1,
			WeekdayNightSlots:  2,
			MinMorning:         6,
			MinAfternoon:       2,
			MaxMorning:         9,
			MaxAfternoon:       3,
			DayShiftWorkerCap:  3,
			MaxFreeDaysPerDate: 2,
			HoursPerShift:      6,
			MaxHoursPerWeek:    40,
			WeekendMinHours:    12,
			WeekendMaxHours:    24,
		},
		Calendar: CalendarConfig{
			PublicHolidays: []string{
				"2026-01-01", "2026-01-02", "2026-01-06", "2026-01-07",
				"2026-01-24", "2026-04-10", "2026-04-12", "2026-04-13",
				"2026-05-01", "2026-05-31", "2026-06-01", "2026-08-15",
				"2026-11-30", "2026-12-01", "2026-12-25", "2026-12-26",
			},
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 加载配置：默认值 ← config.toml ← 环境变量，最后做常量校验
// path 为空时在可执行文件目录下找 config.toml；文件不存在不算错误
func LoadConfig(path string) (*AppConfig, error) {
	config := DefaultConfig()

	if path == "" {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		path = filepath.Join(exeDir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 环境变量只允许覆盖输入输出位置
	if err := env.Parse(&config.Files); err != nil {
		return nil, fmt.Errorf("failed to read env overrides: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate 校验规则常量的取值范围
func Validate(config *AppConfig) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&config.Rules); err != nil {
		return fmt.Errorf("invalid rule constants: %w", err)
	}
	return nil
}

// SaveConfig 保存配置到指定路径
func SaveConfig(config *AppConfig, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
